package assemble

import (
	"github.com/alexiusacademia/gorcd/internal/code"
	"github.com/alexiusacademia/gorcd/internal/detailing"
	"github.com/alexiusacademia/gorcd/internal/element"
	"github.com/alexiusacademia/gorcd/internal/path"
)

// BarGroup is one row of parallel bars sharing a role, diameter and
// layout. Offsets are the signed lateral positions from the layout
// calculator; Classifications hold the per-bar curtailment outcome in the
// same order.
type BarGroup struct {
	ID    string
	Role  detailing.Zone
	Count int
	Dia   float64 // m

	Offsets         []float64
	Classifications []detailing.Classification

	// BarLength is the developed length of one bar: the classification
	// length for straight bars, the analytic path length for bent bars.
	BarLength   float64
	TotalLength float64 // group total, for quantity takeoff
}

// ReinforcementElement is the fully detailed element: resolved parameters,
// bar groups and the bend paths of the bent groups keyed by group ID.
type ReinforcementElement struct {
	Params element.Parameters
	Groups []BarGroup
	Paths  map[string]path.BendPath
}

// Result is the output of assembling one element.
type Result struct {
	Element    ReinforcementElement
	Primitives []Primitive
}

// Group finds a bar group by ID.
func (r *Result) Group(id string) *BarGroup {
	for i := range r.Element.Groups {
		if r.Element.Groups[i].ID == id {
			return &r.Element.Groups[i]
		}
	}
	return nil
}

// TotalSteelLength sums the developed lengths of all bar groups.
func (r *Result) TotalSteelLength() float64 {
	var total float64
	for _, g := range r.Element.Groups {
		total += g.TotalLength
	}
	return total
}

// Strategy is the element-kind-specific detailing pipeline. Every
// implementation runs the same stages over the resolved parameters:
// layout, curtailment, path building, primitive assembly.
type Strategy interface {
	Assemble(p element.Parameters, pol code.Policy) (*Result, error)
}

// ForKind selects the strategy for an element kind.
func ForKind(k element.Kind) Strategy {
	switch k {
	case element.Cantilever:
		return cantileverStrategy{}
	case element.Wall:
		return wallStrategy{}
	default:
		return beamStrategy{}
	}
}

// Assemble details a single resolved element.
func Assemble(p element.Parameters, pol code.Policy) (*Result, error) {
	return ForKind(p.Kind).Assemble(p, pol)
}

// classifyGroup runs the curtailment engine over every bar of a group and
// fills the group's classification and length totals.
func classifyGroup(g *BarGroup, pol code.Policy, p element.Parameters, span float64) error {
	g.Classifications = make([]detailing.Classification, g.Count)
	g.TotalLength = 0

	for i := 0; i < g.Count; i++ {
		cls, err := detailing.Classify(detailing.Request{
			Policy:     pol,
			Kind:       p.Kind,
			Zone:       g.Role,
			BarIndex:   i,
			Total:      g.Count,
			Span:       span,
			Cantilever: p.CantileverLength,
			Backspan:   p.Backspan,
			Dia:        g.Dia,
		})
		if err != nil {
			return err
		}
		g.Classifications[i] = cls
		g.TotalLength += cls.ActiveLength
	}
	if g.Count > 0 {
		g.BarLength = g.Classifications[0].ActiveLength
	}
	return nil
}

// barCylinders emits one cylinder per placement of every bar in a straight
// group, running along the member axis at the group's height and the bar's
// lateral offset.
func barCylinders(g *BarGroup, y float64, role MaterialRole) []Primitive {
	var prims []Primitive
	for i := 0; i < g.Count; i++ {
		z := g.Offsets[i]
		for _, pl := range g.Classifications[i].Placements {
			prims = append(prims, cylinder(role, g.Dia/2, pl.Length, At(pl.StartOffset, y, z)))
		}
	}
	return prims
}

// linkRun emits closed-loop link tubes along [x0, x1] at the given
// spacing, and returns the group describing them.
func linkRun(p element.Parameters, pol code.Policy, x0, x1, yCenter float64) (BarGroup, path.BendPath, []Primitive, error) {
	loopW := p.Width - 2*p.Cover - p.LinkDia
	loopH := p.Depth - 2*p.Cover - p.LinkDia
	loop, err := path.ClosedLoop(loopW, loopH)
	if err != nil {
		return BarGroup{}, path.BendPath{}, nil, err
	}

	start := x0 + pol.EdgeSetback
	end := x1 - pol.EdgeSetback

	count := 0
	if end >= start {
		count = int((end-start)/p.LinkSpacing) + 1
	}
	prims := make([]Primitive, 0, count)
	for i := 0; i < count; i++ {
		x := start + float64(i)*p.LinkSpacing
		prims = append(prims, tube(RoleLink, loop, p.LinkDia/2, sectionPlane(x, yCenter, 0)))
	}

	g := BarGroup{
		ID:          "links",
		Role:        detailing.ZoneHorizontal,
		Count:       count,
		Dia:         p.LinkDia,
		BarLength:   loop.Length(),
		TotalLength: loop.Length() * float64(count),
	}
	return g, loop, prims, nil
}

// envelope emits the concrete outline primitives for the section profile
// over the run [x0, x1]. Flanged profiles add a flange box instead of
// taking a separate code path.
func envelope(p element.Parameters, x0, x1 float64) []Primitive {
	length := x1 - x0
	xc := (x0 + x1) / 2

	prims := []Primitive{
		box(RoleConcrete, length, p.Depth, p.Width, At(xc, p.Depth/2, 0)),
	}

	switch p.Profile {
	case element.ProfileTSection:
		prims = append(prims, box(RoleConcrete, length, p.FlangeThickness, p.FlangeWidth,
			At(xc, p.Depth-p.FlangeThickness/2, 0)))
	case element.ProfileLSection:
		// Flange overhangs one side only; keep the web edge flush.
		zc := (p.FlangeWidth - p.Width) / 2
		prims = append(prims, box(RoleConcrete, length, p.FlangeThickness, p.FlangeWidth,
			At(xc, p.Depth-p.FlangeThickness/2, zc)))
	}
	return prims
}
