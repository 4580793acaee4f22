package path

import (
	"math"

	"github.com/alexiusacademia/gorcd/internal/element"
)

// planeNormal is the bend plane of all locally built paths.
var planeNormal = Vec3{Z: 1}

// ClosedLoop builds a closed rectangular stirrup path on the bar
// centerline: four line segments, corner to corner, closing back onto the
// start point exactly. The rectangle is centered on the origin.
func ClosedLoop(innerWidth, innerHeight float64) (BendPath, error) {
	if innerWidth <= 0 || innerHeight <= 0 {
		return BendPath{}, element.InvalidBendGeometry(
			"link loop needs positive dimensions, got %.4f x %.4f m", innerWidth, innerHeight)
	}

	w, h := innerWidth/2, innerHeight/2
	c0 := Vec3{X: -w, Y: -h}
	c1 := Vec3{X: w, Y: -h}
	c2 := Vec3{X: w, Y: h}
	c3 := Vec3{X: -w, Y: h}

	return BendPath{Segments: []Segment{
		{Kind: Line, P0: c0, P1: c1},
		{Kind: Line, P0: c1, P1: c2},
		{Kind: Line, P0: c2, P1: c3},
		{Kind: Line, P0: c3, P1: c0},
	}}, nil
}

// BentBar builds an open bent-bar path: straight legs alternating with
// circular bends of the given radius and sweep, all turning the same way
// in the bend plane. The arc tangent at each joint equals the adjacent
// leg direction by construction. Supports L-bars (two legs), U-bars
// (three legs) and longer multi-bend anchorages.
//
// Leg lengths are the outer leg dimensions as given on a bar schedule;
// each bend consumes radius x tan(sweep/2) of the adjoining legs. The
// path starts at start heading along dir (an in-plane direction). A bend
// radius too large for its legs, or a combination that folds the bar back
// onto itself, fails with InvalidBendGeometry.
func BentBar(start, dir Vec3, legs []float64, radius, sweep float64) (BendPath, error) {
	if len(legs) == 0 {
		return BendPath{}, element.InvalidBendGeometry("bent bar needs at least one leg")
	}
	for i, leg := range legs {
		if leg < 0 || math.IsNaN(leg) || math.IsInf(leg, 0) {
			return BendPath{}, element.InvalidBendGeometry("leg %d has invalid length %v", i, leg)
		}
	}
	if len(legs) > 1 {
		if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
			return BendPath{}, element.InvalidBendGeometry("bend radius must be positive, got %v", radius)
		}
		if sweep <= 0 || sweep >= math.Pi {
			return BendPath{}, element.InvalidBendGeometry("bend sweep must be in (0, pi), got %v", sweep)
		}
	}
	d := Vec3{X: dir.X, Y: dir.Y}.Unit()
	if d.Norm() == 0 {
		return BendPath{}, element.InvalidBendGeometry("start direction must be a nonzero in-plane vector")
	}

	// Bend tangent length consumed from each adjoining leg.
	tangent := 0.0
	if len(legs) > 1 {
		tangent = radius * math.Tan(sweep/2)
	}

	var segs []Segment
	p := Vec3{X: start.X, Y: start.Y, Z: start.Z}

	for i, leg := range legs {
		straight := leg
		if i > 0 {
			straight -= tangent
		}
		if i < len(legs)-1 {
			straight -= tangent
		}
		if straight < 0 {
			return BendPath{}, element.InvalidBendGeometry(
				"bend radius %.4f m does not fit leg %d of %.4f m", radius, i, leg)
		}

		if straight > 0 {
			next := p.Add(d.Scale(straight))
			segs = append(segs, Segment{Kind: Line, P0: p, P1: next})
			p = next
		}

		if i == len(legs)-1 {
			break
		}

		// Left-turn bend: the center sits on the leg's left normal. The
		// arc start radius vector points from center back to p, so the
		// start tangent equals d exactly; the end tangent is d rotated
		// by sweep.
		center := p.Add(perpLeft(d).Scale(radius))
		startAngle := math.Atan2(p.Y-center.Y, p.X-center.X)
		endAngle := startAngle + sweep

		segs = append(segs, Segment{
			Kind:       Arc,
			Center:     center,
			Radius:     radius,
			StartAngle: startAngle,
			EndAngle:   endAngle,
			Normal:     planeNormal,
		})

		d = rotateXY(d, sweep)
		p = arcPoint(center, radius, endAngle)
	}

	bp := BendPath{Segments: segs}
	if selfIntersects(bp) {
		return BendPath{}, element.InvalidBendGeometry(
			"legs %v with bend radius %.4f m fold the bar onto itself", legs, radius)
	}
	return bp, nil
}

// selfIntersects tessellates the path and tests every pair of non-adjacent
// polyline segments for a proper crossing.
func selfIntersects(p BendPath) bool {
	pts := p.Tessellate(12)
	n := len(pts) - 1
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if segmentsCross(pts[i], pts[i+1], pts[j], pts[j+1]) {
				return true
			}
		}
	}
	return false
}

// segmentsCross reports a proper interior crossing of two in-plane
// segments. Shared endpoints between consecutive runs do not count.
func segmentsCross(a0, a1, b0, b1 Vec3) bool {
	const eps = 1e-12

	d1 := orient(b0, b1, a0)
	d2 := orient(b0, b1, a1)
	d3 := orient(a0, a1, b0)
	d4 := orient(a0, a1, b1)

	return ((d1 > eps && d2 < -eps) || (d1 < -eps && d2 > eps)) &&
		((d3 > eps && d4 < -eps) || (d3 < -eps && d4 > eps))
}

// orient is the signed area of the triangle (a, b, c) in the XY plane.
func orient(a, b, c Vec3) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
