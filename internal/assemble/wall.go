package assemble

import (
	"math"

	"github.com/alexiusacademia/gorcd/internal/code"
	"github.com/alexiusacademia/gorcd/internal/detailing"
	"github.com/alexiusacademia/gorcd/internal/element"
	"github.com/alexiusacademia/gorcd/internal/layout"
	"github.com/alexiusacademia/gorcd/internal/path"
)

// wallStrategy details a retaining-wall panel: stem on a base, vertical
// bars continuous through the stem height and anchored into the base with
// an L-bend of large radius, distribution steel running horizontally.
//
// Frame: X along the panel length, Y up from the base underside, Z across
// the base width. The earth face is +Z.
type wallStrategy struct{}

func (wallStrategy) Assemble(p element.Parameters, pol code.Policy) (*Result, error) {
	re := ReinforcementElement{
		Params: p,
		Paths:  map[string]path.BendPath{},
	}
	var prims []Primitive

	// Concrete: base slab plus stem
	prims = append(prims,
		box(RoleConcrete, p.WallLength, p.BaseDepth, p.BaseWidth,
			At(p.WallLength/2, p.BaseDepth/2, 0)),
		box(RoleConcrete, p.WallLength, p.WallHeight, p.WallThickness,
			At(p.WallLength/2, p.BaseDepth+p.WallHeight/2, 0)),
	)

	zFace := p.WallThickness/2 - p.CoverBuried

	// Vertical steel, earth face
	if p.VerticalCount > 0 {
		g, vpath, vPrims, err := verticalBars(p, pol, zFace)
		if err != nil {
			return nil, err
		}
		prims = append(prims, vPrims...)
		re.Groups = append(re.Groups, *g)
		re.Paths["vertical"] = vpath
	}

	// Horizontal distribution steel, inside the vertical layer
	if p.HorizontalCount > 0 {
		offsets, err := layout.Offsets(p.WallHeight, p.Cover, 0, p.HorizontalDia, p.HorizontalCount)
		if err != nil {
			return nil, err
		}
		g := &BarGroup{
			ID: "horizontal", Role: detailing.ZoneHorizontal,
			Count: p.HorizontalCount, Dia: p.HorizontalDia, Offsets: offsets,
		}
		if err := classifyGroup(g, pol, p, p.WallLength); err != nil {
			return nil, err
		}

		z := zFace - p.VerticalDia - p.HorizontalDia/2
		for i := 0; i < g.Count; i++ {
			y := p.BaseDepth + p.WallHeight/2 + offsets[i]
			for _, pl := range g.Classifications[i].Placements {
				prims = append(prims, cylinder(RoleMainBar, g.Dia/2, pl.Length,
					At(pl.StartOffset, y, z)))
			}
		}
		re.Groups = append(re.Groups, *g)
	}

	return &Result{Element: re, Primitives: prims}, nil
}

// verticalBars builds the L-bar group: a straight development into the
// base, a large-radius bend, then the full stem height. One tube per bar.
func verticalBars(p element.Parameters, pol code.Policy, zFace float64) (*BarGroup, path.BendPath, []Primitive, error) {
	dia := p.VerticalDia

	offsets, err := layout.Offsets(p.WallLength, p.Cover, 0, dia, p.VerticalCount)
	if err != nil {
		return nil, path.BendPath{}, nil, err
	}

	g := &BarGroup{
		ID: "vertical", Role: detailing.ZoneVertical,
		Count: p.VerticalCount, Dia: dia, Offsets: offsets,
	}
	if err := classifyGroup(g, pol, p, p.WallHeight); err != nil {
		return nil, path.BendPath{}, nil, err
	}

	development := pol.DevelopmentFactor * dia
	radius := p.BendRadiusFactor * dia
	riser := p.WallHeight + p.BaseDepth - p.CoverBuried

	lbar, err := path.BentBar(path.Vec3{}, path.Vec3{X: 1},
		[]float64{development, riser}, radius, math.Pi/2)
	if err != nil {
		return nil, path.BendPath{}, nil, err
	}

	// The path length, not the classification sum, is authoritative for
	// bent bars.
	g.BarLength = lbar.Length()
	g.TotalLength = lbar.Length() * float64(g.Count)

	zBar := zFace - dia/2

	// Local frame: the horizontal leg heads into the base interior (-Z),
	// the riser heads up (+Y).
	basis := Transform{
		XAxis: path.Vec3{Z: -1},
		YAxis: path.Vec3{Y: 1},
		ZAxis: path.Vec3{X: 1},
	}

	prims := make([]Primitive, 0, g.Count)
	for i := 0; i < g.Count; i++ {
		x := p.WallLength/2 + offsets[i]
		t := basis
		t.Translation = path.Vec3{X: x, Y: p.CoverBuried + dia/2, Z: zBar + development}
		prims = append(prims, tube(RoleMainBar, lbar, dia/2, t))
	}

	return g, lbar, prims, nil
}
