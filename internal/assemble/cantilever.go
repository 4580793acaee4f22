package assemble

import (
	"github.com/alexiusacademia/gorcd/internal/code"
	"github.com/alexiusacademia/gorcd/internal/detailing"
	"github.com/alexiusacademia/gorcd/internal/element"
	"github.com/alexiusacademia/gorcd/internal/path"
)

// Support stub dimensions for rendered span boundaries (meters).
const (
	supportStubWidth = 0.30
	supportStubDepth = 0.60
)

// cantileverStrategy details a cantilever with its anchoring backspan. The
// support sits at x = 0; the cantilever projects to -CantileverLength and
// the backspan runs to +Backspan. Top steel is in tension and extends into
// the backspan per the policy's extension rules.
type cantileverStrategy struct{}

func (cantileverStrategy) Assemble(p element.Parameters, pol code.Policy) (*Result, error) {
	re := ReinforcementElement{
		Params: p,
		Paths:  map[string]path.BendPath{},
	}
	var prims []Primitive

	prims = append(prims, envelope(p, -p.CantileverLength, p.Backspan)...)

	// Root support under the cantilever
	prims = append(prims, box(RoleSupport, supportStubWidth, supportStubDepth, p.Width,
		At(0, -supportStubDepth/2, 0)))

	// Top tension steel
	if p.TopCount > 0 {
		g, err := straightGroup("top", detailing.ZoneTop, p.TopCount, p.TopDia, p, pol, p.Span)
		if err != nil {
			return nil, err
		}
		y := p.Depth - p.Cover - p.LinkDia - p.TopDia/2
		prims = append(prims, barCylinders(g, y, RoleMainBar)...)
		re.Groups = append(re.Groups, *g)
	}

	// Nominal bottom steel over the full underside
	if p.BottomCount > 0 {
		g, err := straightGroup("bottom", detailing.ZoneBottom, p.BottomCount, p.BottomDia, p, pol, p.Span)
		if err != nil {
			return nil, err
		}
		y := p.Cover + p.LinkDia + p.BottomDia/2
		prims = append(prims, barCylinders(g, y, RoleMainBar)...)
		re.Groups = append(re.Groups, *g)
	}

	// Links over the whole run
	linkGroup, loop, linkPrims, err := linkRun(p, pol, -p.CantileverLength, p.Backspan, p.Depth/2)
	if err != nil {
		return nil, err
	}
	prims = append(prims, linkPrims...)
	re.Groups = append(re.Groups, linkGroup)
	re.Paths["links"] = loop

	return &Result{Element: re, Primitives: prims}, nil
}
