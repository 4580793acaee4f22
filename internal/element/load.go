package element

import (
	"encoding/json"
	"fmt"
	"os"
)

// AssemblyFile is a multi-span assembly definition loaded from JSON. Each
// span carries its own parameter record; span order in the file is the
// chaining order.
type AssemblyFile struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Code        string       `json:"code,omitempty"` // detailing code family, defaults to BS8110
	Spans       []Parameters `json:"spans"`
}

// LoadAssembly loads an assembly definition, resolving every span record.
// A file with zero spans, or any span failing resolution, is rejected.
func LoadAssembly(filename string) (*AssemblyFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var af AssemblyFile
	if err := json.Unmarshal(data, &af); err != nil {
		return nil, err
	}

	if len(af.Spans) == 0 {
		return nil, InvalidField("spans", "assembly must define at least one span")
	}

	for i, raw := range af.Spans {
		resolved, err := Resolve(Beam, raw)
		if err != nil {
			return nil, fmt.Errorf("span %d: %w", i+1, err)
		}
		af.Spans[i] = resolved
	}

	return &af, nil
}
