package assemble

import (
	"sync"

	"github.com/alexiusacademia/gorcd/internal/code"
	"github.com/alexiusacademia/gorcd/internal/element"
)

// StructuralSpan is one span of a multi-span assembly. StartOffsetX is
// derived by prefix sum over the preceding span lengths, never authored.
type StructuralSpan struct {
	Params       element.Parameters
	StartOffsetX float64
	Result       *Result
}

// AssemblyResult is the output of assembling a chain of spans into one
// primitive list.
type AssemblyResult struct {
	Spans       []StructuralSpan
	TotalLength float64
	Primitives  []Primitive
}

// AssembleAssembly chains beam spans end to end. Span offsets are computed
// strictly sequentially (each depends on every preceding length); per-span
// assembly has no cross-span dependency and runs in parallel. The result
// ordering is by span index, so identical inputs yield identical output.
//
// Support stubs are placed at every span boundary plus the final one, and
// splice-candidate bottom bars receive their lap cylinders at internal
// supports.
func AssembleAssembly(spans []element.Parameters, pol code.Policy) (*AssemblyResult, error) {
	n := len(spans)
	if n == 0 {
		return &AssemblyResult{}, nil
	}

	ar := &AssemblyResult{Spans: make([]StructuralSpan, n)}

	// Prefix sum, sequential by nature.
	offset := 0.0
	for i, p := range spans {
		ar.Spans[i] = StructuralSpan{Params: p, StartOffsetX: offset}
		offset += p.Span
	}
	ar.TotalLength = offset

	// Per-span assembly, parallel.
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range ar.Spans {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ar.Spans[i].Result, errs[i] = Assemble(ar.Spans[i].Params, pol)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	// Concatenate in span order, shifting each span into place.
	for i := range ar.Spans {
		sp := &ar.Spans[i]
		for _, pr := range sp.Result.Primitives {
			pr.Transform = pr.Transform.Translated(sp.StartOffsetX)
			ar.Primitives = append(ar.Primitives, pr)
		}
	}

	// Splice laps for bottom bars at internal supports.
	for i := 1; i < n; i++ {
		sp := &ar.Spans[i]
		bottom := sp.Result.Group("bottom")
		if bottom == nil {
			continue
		}
		y := sp.Params.Cover + sp.Params.LinkDia + bottom.Dia/2
		for j := 0; j < bottom.Count; j++ {
			cls := bottom.Classifications[j]
			if !cls.SpliceCandidate {
				continue
			}
			ar.Primitives = append(ar.Primitives, cylinder(RoleMainBar, bottom.Dia/2, cls.LapLength,
				At(sp.StartOffsetX-cls.LapLength/2, y, bottom.Offsets[j])))
		}
	}

	// Support stubs: one per boundary, including both outer ends.
	for i := 0; i <= n; i++ {
		adjacent := ar.Spans[min(i, n-1)].Params
		x := ar.TotalLength
		if i < n {
			x = ar.Spans[i].StartOffsetX
		}
		ar.Primitives = append(ar.Primitives, box(RoleSupport,
			supportStubWidth, supportStubDepth, adjacent.Width,
			At(x, -supportStubDepth/2, 0)))
	}

	return ar, nil
}

// TotalSteelLength sums developed bar lengths over every span, laps
// included.
func (ar *AssemblyResult) TotalSteelLength() float64 {
	var total float64
	for i := range ar.Spans {
		total += ar.Spans[i].Result.TotalSteelLength()
	}
	for i := 1; i < len(ar.Spans); i++ {
		bottom := ar.Spans[i].Result.Group("bottom")
		if bottom == nil {
			continue
		}
		for _, cls := range bottom.Classifications {
			if cls.SpliceCandidate {
				total += cls.LapLength
			}
		}
	}
	return total
}
