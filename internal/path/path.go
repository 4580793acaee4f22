// Package path models bent-bar centerlines as ordered sequences of straight
// segments and circular arcs. Arcs are kept analytic (center, radius, angle
// range) and only tessellated at the render/export boundary, so developed
// lengths never depend on tessellation density.
//
// Paths are built in the XY plane with arc normals along +Z; the assembler
// orients them into the member's coordinate frame.
package path

import "math"

// SegmentKind tags the segment variant.
type SegmentKind int

const (
	Line SegmentKind = iota
	Arc
)

// Segment is one piece of a bend path: a straight line or a circular arc.
// For arcs the angles are measured CCW about Normal and EndAngle may be
// greater or less than StartAngle depending on turn direction.
type Segment struct {
	Kind SegmentKind

	// Line
	P0, P1 Vec3

	// Arc
	Center     Vec3
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Normal     Vec3
}

// arcPoint evaluates the arc at the given angle. Paths are plane-embedded
// with Normal = +Z, so the arc basis is the global XY frame.
func arcPoint(center Vec3, radius, angle float64) Vec3 {
	return Vec3{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
		Z: center.Z,
	}
}

// Start returns the segment's first point, analytically for arcs.
func (s Segment) Start() Vec3 {
	if s.Kind == Arc {
		return arcPoint(s.Center, s.Radius, s.StartAngle)
	}
	return s.P0
}

// End returns the segment's last point, analytically for arcs.
func (s Segment) End() Vec3 {
	if s.Kind == Arc {
		return arcPoint(s.Center, s.Radius, s.EndAngle)
	}
	return s.P1
}

// Length is the analytic segment length: chord length for lines,
// radius x sweep for arcs.
func (s Segment) Length() float64 {
	if s.Kind == Arc {
		return s.Radius * math.Abs(s.EndAngle-s.StartAngle)
	}
	return s.P1.Sub(s.P0).Norm()
}

// BendPath is an ordered, continuous sequence of segments. Consecutive
// segments share an endpoint and tangent direction by construction.
type BendPath struct {
	Segments []Segment
}

// Start returns the first point of the path.
func (p BendPath) Start() Vec3 {
	if len(p.Segments) == 0 {
		return Vec3{}
	}
	return p.Segments[0].Start()
}

// End returns the last point of the path.
func (p BendPath) End() Vec3 {
	if len(p.Segments) == 0 {
		return Vec3{}
	}
	return p.Segments[len(p.Segments)-1].End()
}

// Length is the developed length of the bar: the sum of straight lengths
// plus radius x sweep per arc. This is the authoritative value for
// quantity takeoff and is independent of tessellation.
func (p BendPath) Length() float64 {
	var total float64
	for _, s := range p.Segments {
		total += s.Length()
	}
	return total
}

// DefaultArcSegments is the tessellation density used when a caller does
// not specify one.
const DefaultArcSegments = 16

// Tessellate flattens the path to a polyline. Each arc contributes
// arcSegments chords with angle-monotonic interior points; the first and
// last tessellated point of every arc coincide exactly with the analytic
// arc endpoints, so there is no rounding drift at joints.
func (p BendPath) Tessellate(arcSegments int) []Vec3 {
	if len(p.Segments) == 0 {
		return nil
	}
	if arcSegments < 1 {
		arcSegments = DefaultArcSegments
	}

	pts := []Vec3{p.Segments[0].Start()}
	for _, s := range p.Segments {
		switch s.Kind {
		case Line:
			pts = append(pts, s.P1)
		case Arc:
			sweep := s.EndAngle - s.StartAngle
			for i := 1; i < arcSegments; i++ {
				a := s.StartAngle + sweep*float64(i)/float64(arcSegments)
				pts = append(pts, arcPoint(s.Center, s.Radius, a))
			}
			pts = append(pts, s.End())
		}
	}
	return pts
}
