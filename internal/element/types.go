package element

// Kind selects the element-specific detailing pipeline.
type Kind int

const (
	Beam Kind = iota
	Cantilever
	Wall
)

func (k Kind) String() string {
	switch k {
	case Beam:
		return "beam"
	case Cantilever:
		return "cantilever"
	case Wall:
		return "retaining wall"
	}
	return "unknown"
}

// Profile is the concrete envelope shape of the section.
type Profile int

const (
	ProfileRectangular Profile = iota
	ProfileTSection
	ProfileLSection
)

func (p Profile) String() string {
	switch p {
	case ProfileRectangular:
		return "rectangular"
	case ProfileTSection:
		return "T-section"
	case ProfileLSection:
		return "L-section"
	}
	return "unknown"
}

// Parameters is the resolved dimensional record for one element.
// All lengths are in meters, angles in radians. The record is immutable
// once produced by Resolve; the engine recomputes everything downstream
// from the most recent record rather than mutating in place.
type Parameters struct {
	Kind Kind `json:"-"`

	// Run geometry
	Span             float64 `json:"span_m"`              // beam clear span
	CantileverLength float64 `json:"cantilever_length_m"` // cantilever projection
	Backspan         float64 `json:"backspan_m"`          // anchoring span behind the support

	// Section
	Width           float64 `json:"width_m"`  // section width b
	Depth           float64 `json:"depth_m"`  // total depth h
	Profile         Profile `json:"profile"`
	FlangeWidth     float64 `json:"flange_width_m"`     // T/L sections
	FlangeThickness float64 `json:"flange_thickness_m"` // T/L sections

	// Retaining wall
	WallHeight    float64 `json:"wall_height_m"`    // stem height above base
	WallThickness float64 `json:"wall_thickness_m"` // stem thickness
	WallLength    float64 `json:"wall_length_m"`    // panel length detailed
	BaseDepth     float64 `json:"base_depth_m"`
	BaseWidth     float64 `json:"base_width_m"`

	// Cover
	Cover       float64 `json:"cover_m"`        // exposed-face cover
	CoverBuried float64 `json:"cover_buried_m"` // earth-face cover (walls)

	// Main reinforcement, per zone
	BottomCount int     `json:"bottom_count"`
	BottomDia   float64 `json:"bottom_dia_m"`
	TopCount    int     `json:"top_count"`
	TopDia      float64 `json:"top_dia_m"`
	HangerCount int     `json:"hanger_count"`
	HangerDia   float64 `json:"hanger_dia_m"`

	// Wall reinforcement
	VerticalCount   int     `json:"vertical_count"`
	VerticalDia     float64 `json:"vertical_dia_m"`
	HorizontalCount int     `json:"horizontal_count"`
	HorizontalDia   float64 `json:"horizontal_dia_m"`

	// Shear links
	LinkDia     float64 `json:"link_dia_m"`
	LinkSpacing float64 `json:"link_spacing_m"`

	// Bend radius = BendRadiusFactor x bar diameter
	BendRadiusFactor float64 `json:"bend_radius_factor"`
}
