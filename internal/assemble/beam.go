package assemble

import (
	"github.com/alexiusacademia/gorcd/internal/code"
	"github.com/alexiusacademia/gorcd/internal/detailing"
	"github.com/alexiusacademia/gorcd/internal/element"
	"github.com/alexiusacademia/gorcd/internal/layout"
	"github.com/alexiusacademia/gorcd/internal/path"
)

// beamStrategy details a simply supported beam span: bottom steel over the
// full span, top support steel with 60/40 curtailment, optional hangers
// carrying the link cage, and closed links at constant spacing.
type beamStrategy struct{}

func (beamStrategy) Assemble(p element.Parameters, pol code.Policy) (*Result, error) {
	re := ReinforcementElement{
		Params: p,
		Paths:  map[string]path.BendPath{},
	}
	var prims []Primitive

	prims = append(prims, envelope(p, 0, p.Span)...)

	// Bottom steel
	if p.BottomCount > 0 {
		g, err := straightGroup("bottom", detailing.ZoneBottom, p.BottomCount, p.BottomDia, p, pol, p.Span)
		if err != nil {
			return nil, err
		}
		y := p.Cover + p.LinkDia + p.BottomDia/2
		prims = append(prims, barCylinders(g, y, RoleMainBar)...)
		re.Groups = append(re.Groups, *g)
	}

	// Top support steel
	if p.TopCount > 0 {
		g, err := straightGroup("top", detailing.ZoneTop, p.TopCount, p.TopDia, p, pol, p.Span)
		if err != nil {
			return nil, err
		}
		y := p.Depth - p.Cover - p.LinkDia - p.TopDia/2
		prims = append(prims, barCylinders(g, y, RoleMainBar)...)
		re.Groups = append(re.Groups, *g)
	}

	// Hanger bars
	if p.HangerCount > 0 {
		g, err := straightGroup("hanger", detailing.ZoneHanger, p.HangerCount, p.HangerDia, p, pol, p.Span)
		if err != nil {
			return nil, err
		}
		y := p.Depth - p.Cover - p.LinkDia - p.HangerDia/2
		prims = append(prims, barCylinders(g, y, RoleHanger)...)
		re.Groups = append(re.Groups, *g)
	}

	// Links
	linkGroup, loop, linkPrims, err := linkRun(p, pol, 0, p.Span, p.Depth/2)
	if err != nil {
		return nil, err
	}
	prims = append(prims, linkPrims...)
	re.Groups = append(re.Groups, linkGroup)
	re.Paths["links"] = loop

	return &Result{Element: re, Primitives: prims}, nil
}

// straightGroup lays out and classifies one straight bar group across the
// beam section.
func straightGroup(id string, zone detailing.Zone, count int, dia float64,
	p element.Parameters, pol code.Policy, span float64) (*BarGroup, error) {

	offsets, err := layout.Offsets(p.Width, p.Cover, p.LinkDia, dia, count)
	if err != nil {
		return nil, err
	}

	g := &BarGroup{ID: id, Role: zone, Count: count, Dia: dia, Offsets: offsets}
	if err := classifyGroup(g, pol, p, span); err != nil {
		return nil, err
	}
	return g, nil
}
