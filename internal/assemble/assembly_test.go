package assemble

import (
	"reflect"
	"testing"

	"github.com/alexiusacademia/gorcd/internal/code"
	"github.com/alexiusacademia/gorcd/internal/element"
)

func testSpans(t *testing.T, lengths ...float64) []element.Parameters {
	t.Helper()
	spans := make([]element.Parameters, len(lengths))
	for i, l := range lengths {
		p, err := element.Resolve(element.Beam, element.Parameters{
			Span: l, Width: 0.3, Depth: 0.5,
			BottomCount: 3, BottomDia: 0.016,
			TopCount: 4, TopDia: 0.012,
		})
		if err != nil {
			t.Fatalf("resolve span %d: %v", i, err)
		}
		spans[i] = p
	}
	return spans
}

func TestAssembleAssemblyOffsets(t *testing.T) {
	pol := code.Default()
	ar, err := AssembleAssembly(testSpans(t, 6, 6, 4), pol)
	if err != nil {
		t.Fatalf("AssembleAssembly: %v", err)
	}

	wantOffsets := []float64{0, 6, 12}
	if len(ar.Spans) != 3 {
		t.Fatalf("got %d spans, want 3", len(ar.Spans))
	}
	for i, want := range wantOffsets {
		if ar.Spans[i].StartOffsetX != want {
			t.Errorf("span %d start offset %.3f, want %.3f", i, ar.Spans[i].StartOffsetX, want)
		}
	}
	if ar.TotalLength != 16 {
		t.Errorf("total length %.3f, want 16", ar.TotalLength)
	}
}

func TestAssembleAssemblySupportsAndLaps(t *testing.T) {
	pol := code.Default()
	ar, err := AssembleAssembly(testSpans(t, 6, 6, 4), pol)
	if err != nil {
		t.Fatalf("AssembleAssembly: %v", err)
	}

	// One support stub per boundary, outer ends included.
	if got := countRole(ar.Primitives, RoleSupport, Box); got != 4 {
		t.Errorf("support stubs = %d, want 4", got)
	}

	// 3 bottom bars give ceil(0.3*3) = 1 splice candidate per span; laps
	// appear at the two internal supports only.
	lap := pol.LapFactor * 0.016
	laps := 0
	for _, pr := range ar.Primitives {
		if pr.Kind == Cylinder && pr.Role == RoleMainBar && floatEq(pr.Length, lap) {
			laps++
			// Centered on a span boundary.
			x := pr.Transform.Translation.X + lap/2
			if !floatEq(x, 6) && !floatEq(x, 12) {
				t.Errorf("lap centered at %.3f, want an internal support", x)
			}
		}
	}
	if laps != 2 {
		t.Errorf("lap cylinders = %d, want 2", laps)
	}

	// The assembly total includes the laps on top of the span totals.
	var spanTotal float64
	for i := range ar.Spans {
		spanTotal += ar.Spans[i].Result.TotalSteelLength()
	}
	if !floatEq(ar.TotalSteelLength(), spanTotal+2*lap) {
		t.Errorf("assembly steel %.4f, want %.4f", ar.TotalSteelLength(), spanTotal+2*lap)
	}
}

func TestAssembleAssemblyGeometryShifted(t *testing.T) {
	pol := code.Default()
	spans := testSpans(t, 6, 4)

	single, err := Assemble(spans[1], pol)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	ar, err := AssembleAssembly(spans, pol)
	if err != nil {
		t.Fatalf("AssembleAssembly: %v", err)
	}

	// The second span's primitives appear in order, shifted by the first
	// span's length.
	offset := len(ar.Spans[0].Result.Primitives)
	for i, want := range single.Primitives {
		got := ar.Primitives[offset+i]
		want.Transform = want.Transform.Translated(6)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("primitive %d differs after shifting: got %+v, want %+v", i, got, want)
		}
	}
}

func TestAssembleAssemblyDeterministic(t *testing.T) {
	pol := code.Default()
	spans := testSpans(t, 6, 6, 4)

	a, err := AssembleAssembly(spans, pol)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := AssembleAssembly(spans, pol)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical spans produced structurally different assemblies")
	}
}

func TestAssembleAssemblyEmpty(t *testing.T) {
	ar, err := AssembleAssembly(nil, code.Default())
	if err != nil {
		t.Fatalf("empty assembly: %v", err)
	}
	if len(ar.Spans) != 0 || ar.TotalLength != 0 || len(ar.Primitives) != 0 {
		t.Errorf("empty assembly not empty: %+v", ar)
	}
}

func TestAssembleAssemblyPropagatesErrors(t *testing.T) {
	spans := testSpans(t, 6)
	spans[0].Width = 0.1
	spans[0].BottomCount = 6

	_, err := AssembleAssembly(spans, code.Default())
	if !element.IsKind(err, element.ErrSectionTooSmall) {
		t.Errorf("got %v, want section too small", err)
	}
}
