package element

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempAssembly(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "assembly.json")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return name
}

func TestLoadAssembly(t *testing.T) {
	name := writeTempAssembly(t, `{
		"name": "Frame line A",
		"code": "BS8110",
		"spans": [
			{"span_m": 6.0, "width_m": 0.3, "depth_m": 0.5, "bottom_count": 3, "top_count": 4},
			{"span_m": 4.0, "width_m": 0.3, "depth_m": 0.5, "bottom_count": 2, "top_count": 2}
		]
	}`)

	af, err := LoadAssembly(name)
	if err != nil {
		t.Fatalf("LoadAssembly: %v", err)
	}
	if af.Name != "Frame line A" || af.Code != "BS8110" {
		t.Errorf("header fields: %+v", af)
	}
	if len(af.Spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(af.Spans))
	}

	// Spans come back resolved: defaults applied, kind set.
	for i, sp := range af.Spans {
		if sp.Kind != Beam {
			t.Errorf("span %d kind %v, want beam", i, sp.Kind)
		}
		if sp.Cover != 0.030 || sp.LinkDia != 0.010 {
			t.Errorf("span %d defaults not applied: %+v", i, sp)
		}
	}
}

func TestLoadAssemblyRejectsEmptyAndInvalid(t *testing.T) {
	empty := writeTempAssembly(t, `{"name": "empty", "spans": []}`)
	if _, err := LoadAssembly(empty); !IsKind(err, ErrInvalidField) {
		t.Errorf("empty spans: got %v, want invalid field", err)
	}

	bad := writeTempAssembly(t, `{"spans": [{"width_m": 0.3, "depth_m": 0.5}]}`)
	if _, err := LoadAssembly(bad); !IsKind(err, ErrInvalidField) {
		t.Errorf("span without length: got %v, want invalid field", err)
	}

	if _, err := LoadAssembly(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should fail")
	}

	garbled := writeTempAssembly(t, `{not json`)
	if _, err := LoadAssembly(garbled); err == nil {
		t.Error("malformed JSON should fail")
	}
}
