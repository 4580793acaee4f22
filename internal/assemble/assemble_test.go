package assemble

import (
	"math"
	"reflect"
	"testing"

	"github.com/alexiusacademia/gorcd/internal/code"
	"github.com/alexiusacademia/gorcd/internal/element"
)

func testBeam(t *testing.T) element.Parameters {
	t.Helper()
	p, err := element.Resolve(element.Beam, element.Parameters{
		Span: 6.0, Width: 0.3, Depth: 0.5,
		BottomCount: 3, BottomDia: 0.016,
		TopCount: 4, TopDia: 0.012,
	})
	if err != nil {
		t.Fatalf("resolve beam: %v", err)
	}
	return p
}

func countRole(prims []Primitive, role MaterialRole, kind PrimitiveKind) int {
	n := 0
	for _, pr := range prims {
		if pr.Role == role && pr.Kind == kind {
			n++
		}
	}
	return n
}

func TestAssembleBeam(t *testing.T) {
	p := testBeam(t)
	pol := code.Default()

	r, err := Assemble(p, pol)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	bottom := r.Group("bottom")
	if bottom == nil || bottom.Count != 3 {
		t.Fatalf("bottom group missing or wrong count: %+v", bottom)
	}
	top := r.Group("top")
	if top == nil || top.Count != 4 {
		t.Fatalf("top group missing or wrong count: %+v", top)
	}

	// 3 of 4 top bars continuous, 1 curtailed into two segments: 5 top
	// cylinders in total.
	if got := len(topPlacements(top)); got != 5 {
		t.Errorf("top placements = %d, want 5", got)
	}

	// Bottom bars sit at cover + link + dia/2 above the soffit.
	wantY := p.Cover + p.LinkDia + p.BottomDia/2
	found := false
	for _, pr := range r.Primitives {
		if pr.Kind == Cylinder && pr.Role == RoleMainBar &&
			math.Abs(pr.Transform.Translation.Y-wantY) < 1e-12 {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("no bottom cylinder at y = %.4f", wantY)
	}

	// Links at 150 mm centers inside the edge setback.
	links := r.Group("links")
	if links == nil {
		t.Fatal("links group missing")
	}
	wantLinks := int((p.Span-2*pol.EdgeSetback)/p.LinkSpacing) + 1
	if links.Count != wantLinks {
		t.Errorf("link count %d, want %d", links.Count, wantLinks)
	}
	if got := countRole(r.Primitives, RoleLink, Tube); got != wantLinks {
		t.Errorf("link tubes = %d, want %d", got, wantLinks)
	}

	// The link loop sits inside the cover on both faces.
	loop, ok := r.Element.Paths["links"]
	if !ok {
		t.Fatal("link loop path missing")
	}
	wantPerimeter := 2 * ((p.Width - 2*p.Cover - p.LinkDia) + (p.Depth - 2*p.Cover - p.LinkDia))
	if math.Abs(loop.Length()-wantPerimeter) > 1e-12 {
		t.Errorf("loop perimeter %.4f, want %.4f", loop.Length(), wantPerimeter)
	}

	if r.TotalSteelLength() <= 0 {
		t.Error("total steel length should be positive")
	}
}

func topPlacements(g *BarGroup) []float64 {
	var lengths []float64
	for _, cls := range g.Classifications {
		for _, pl := range cls.Placements {
			lengths = append(lengths, pl.Length)
		}
	}
	return lengths
}

func TestAssembleDeterministic(t *testing.T) {
	p := testBeam(t)
	pol := code.Default()

	a, err := Assemble(p, pol)
	if err != nil {
		t.Fatalf("first assemble: %v", err)
	}
	b, err := Assemble(p, pol)
	if err != nil {
		t.Fatalf("second assemble: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("identical parameters produced structurally different results")
	}
}

func TestAssembleBeamProfiles(t *testing.T) {
	p := testBeam(t)
	p.Profile = element.ProfileTSection
	p.FlangeWidth = 0.9
	p.FlangeThickness = 0.15

	r, err := Assemble(p, code.Default())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	// Flanged profiles add a second concrete box.
	if got := countRole(r.Primitives, RoleConcrete, Box); got != 2 {
		t.Errorf("concrete boxes = %d, want web + flange", got)
	}
}

func TestAssembleSectionTooSmall(t *testing.T) {
	p := testBeam(t)
	p.Width = 0.1
	p.BottomCount = 6

	_, err := Assemble(p, code.Default())
	if !element.IsKind(err, element.ErrSectionTooSmall) {
		t.Errorf("got %v, want section too small", err)
	}
}

func TestAssembleCantilever(t *testing.T) {
	p, err := element.Resolve(element.Cantilever, element.Parameters{
		CantileverLength: 2.5, Backspan: 3.0,
		Width: 0.3, Depth: 0.5,
		TopCount: 4, TopDia: 0.020,
		BottomCount: 2, BottomDia: 0.012,
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	pol := code.Default()

	r, err := Assemble(p, pol)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	top := r.Group("top")
	if top == nil {
		t.Fatal("top group missing")
	}
	// Long bars 2.5 + 3.0, short bars 2.5 + 1.875.
	if !floatEq(top.Classifications[0].ActiveLength, 5.5) {
		t.Errorf("long bar length %.3f, want 5.5", top.Classifications[0].ActiveLength)
	}
	if !floatEq(top.Classifications[3].ActiveLength, 4.375) {
		t.Errorf("short bar length %.3f, want 4.375", top.Classifications[3].ActiveLength)
	}

	// Every top bar starts at the free end.
	for i, cls := range top.Classifications {
		if !floatEq(cls.Placements[0].StartOffset, -2.5) {
			t.Errorf("bar %d starts at %.3f, want -2.5", i, cls.Placements[0].StartOffset)
		}
	}

	// One root support stub.
	if got := countRole(r.Primitives, RoleSupport, Box); got != 1 {
		t.Errorf("support boxes = %d, want 1", got)
	}
}

func TestAssembleWall(t *testing.T) {
	p, err := element.Resolve(element.Wall, element.Parameters{
		WallHeight: 3.0, WallThickness: 0.25, WallLength: 4.0,
		BaseDepth: 0.4, BaseWidth: 2.0,
		VerticalCount: 10, VerticalDia: 0.012,
		HorizontalCount: 8, HorizontalDia: 0.010,
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	pol := code.Default()

	r, err := Assemble(p, pol)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	vertical := r.Group("vertical")
	if vertical == nil || vertical.Count != 10 {
		t.Fatalf("vertical group missing or wrong count: %+v", vertical)
	}

	// One L-bar tube per vertical bar.
	if got := countRole(r.Primitives, RoleMainBar, Tube); got != 10 {
		t.Errorf("vertical tubes = %d, want 10", got)
	}

	// The analytic path length is authoritative for bent bars: straight
	// legs lose radius*tan(45°) each at the bend, the arc adds radius*pi/2.
	lpath, ok := r.Element.Paths["vertical"]
	if !ok {
		t.Fatal("vertical bend path missing")
	}
	development := pol.DevelopmentFactor * p.VerticalDia
	riser := p.WallHeight + p.BaseDepth - p.CoverBuried
	radius := p.BendRadiusFactor * p.VerticalDia
	want := (development - radius) + (riser - radius) + radius*math.Pi/2
	if !floatEq(lpath.Length(), want) {
		t.Errorf("L-bar length %.6f, want %.6f", lpath.Length(), want)
	}
	if !floatEq(vertical.BarLength, lpath.Length()) {
		t.Errorf("group bar length %.6f does not match path length %.6f",
			vertical.BarLength, lpath.Length())
	}

	horizontal := r.Group("horizontal")
	if horizontal == nil || horizontal.Count != 8 {
		t.Fatalf("horizontal group missing or wrong count: %+v", horizontal)
	}

	// Base and stem concrete.
	if got := countRole(r.Primitives, RoleConcrete, Box); got != 2 {
		t.Errorf("concrete boxes = %d, want base + stem", got)
	}
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
