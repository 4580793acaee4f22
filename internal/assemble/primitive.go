// Package assemble converts resolved parameters, bar layouts and bend paths
// into a flat, render-agnostic list of primitives with full transforms.
// Every public operation is a pure function: identical parameters yield a
// structurally identical primitive list, ordering included.
package assemble

import "github.com/alexiusacademia/gorcd/internal/path"

// MaterialRole is a rendering hint attached to each primitive.
type MaterialRole int

const (
	RoleConcrete MaterialRole = iota
	RoleMainBar
	RoleLink
	RoleHanger
	RoleSupport
)

func (r MaterialRole) String() string {
	switch r {
	case RoleConcrete:
		return "concrete"
	case RoleMainBar:
		return "main-bar"
	case RoleLink:
		return "link"
	case RoleHanger:
		return "hanger"
	case RoleSupport:
		return "support"
	}
	return "unknown"
}

// PrimitiveKind tags the primitive variant.
type PrimitiveKind int

const (
	Cylinder PrimitiveKind = iota
	Tube
	Box
)

func (k PrimitiveKind) String() string {
	switch k {
	case Cylinder:
		return "cylinder"
	case Tube:
		return "tube"
	case Box:
		return "box"
	}
	return "unknown"
}

// Transform places a primitive in the element frame: a translation plus an
// orthonormal basis giving the local axes in world coordinates. The element
// frame runs X along the member axis, Y up from the soffit and Z laterally
// across the section.
type Transform struct {
	Translation path.Vec3
	XAxis       path.Vec3
	YAxis       path.Vec3
	ZAxis       path.Vec3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		XAxis: path.Vec3{X: 1},
		YAxis: path.Vec3{Y: 1},
		ZAxis: path.Vec3{Z: 1},
	}
}

// At returns an identity-rotation transform at the given position.
func At(x, y, z float64) Transform {
	t := Identity()
	t.Translation = path.Vec3{X: x, Y: y, Z: z}
	return t
}

// sectionPlane maps the local XY bend plane of link loops onto the world
// section plane: local X becomes lateral Z, local Y stays vertical, local
// Z becomes the member axis X.
func sectionPlane(x, y, z float64) Transform {
	return Transform{
		Translation: path.Vec3{X: x, Y: y, Z: z},
		XAxis:       path.Vec3{Z: 1},
		YAxis:       path.Vec3{Y: 1},
		ZAxis:       path.Vec3{X: 1},
	}
}

// Apply maps a local point into world coordinates.
func (t Transform) Apply(p path.Vec3) path.Vec3 {
	return t.Translation.
		Add(t.XAxis.Scale(p.X)).
		Add(t.YAxis.Scale(p.Y)).
		Add(t.ZAxis.Scale(p.Z))
}

// Translated returns the transform shifted along the world X axis. Used to
// chain span geometry into a multi-span assembly.
func (t Transform) Translated(dx float64) Transform {
	t.Translation.X += dx
	return t
}

// Primitive is one renderable solid. Exactly the fields for its kind are
// populated: Radius+Length for cylinders, Path+Radius+Tessellation for
// tubes, Dims for boxes. Cylinders run along their local +X axis starting
// at the transform origin; boxes are centered on the transform origin.
type Primitive struct {
	Kind PrimitiveKind
	Role MaterialRole

	Radius       float64
	Length       float64
	Dims         path.Vec3
	Path         path.BendPath
	Tessellation int

	Transform Transform
}

func cylinder(role MaterialRole, radius, length float64, t Transform) Primitive {
	return Primitive{Kind: Cylinder, Role: role, Radius: radius, Length: length, Transform: t}
}

func tube(role MaterialRole, p path.BendPath, radius float64, t Transform) Primitive {
	return Primitive{Kind: Tube, Role: role, Path: p, Radius: radius,
		Tessellation: path.DefaultArcSegments, Transform: t}
}

func box(role MaterialRole, dx, dy, dz float64, t Transform) Primitive {
	return Primitive{Kind: Box, Role: role, Dims: path.Vec3{X: dx, Y: dy, Z: dz}, Transform: t}
}
