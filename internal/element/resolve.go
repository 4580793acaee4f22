package element

import "math"

// Detailing defaults per element kind (meters). Zero-valued fields in the
// raw record are treated as unspecified and filled from these.
const (
	defaultBeamCover       = 0.030
	defaultWallCover       = 0.030
	defaultWallCoverBuried = 0.050

	defaultBottomDia   = 0.016
	defaultTopDia      = 0.012
	defaultHangerDia   = 0.016
	defaultVerticalDia = 0.012
	defaultLinkDia     = 0.010

	defaultLinkSpacing      = 0.150
	defaultBendRadiusFactor = 4.0
)

// Resolve validates and defaults a raw parameter record for the given
// element kind. The raw record is not modified; either a fully resolved
// copy or a ConfigError is returned, never a partial resolution.
func Resolve(kind Kind, raw Parameters) (Parameters, error) {
	p := raw
	p.Kind = kind

	applyDefaults(&p)

	if err := validate(&p); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

func applyDefaults(p *Parameters) {
	if p.Cover == 0 {
		if p.Kind == Wall {
			p.Cover = defaultWallCover
		} else {
			p.Cover = defaultBeamCover
		}
	}
	if p.Kind == Wall && p.CoverBuried == 0 {
		p.CoverBuried = defaultWallCoverBuried
	}

	if p.BottomCount > 0 && p.BottomDia == 0 {
		p.BottomDia = defaultBottomDia
	}
	if p.TopCount > 0 && p.TopDia == 0 {
		p.TopDia = defaultTopDia
	}
	if p.HangerCount > 0 && p.HangerDia == 0 {
		p.HangerDia = defaultHangerDia
	}
	if p.VerticalCount > 0 && p.VerticalDia == 0 {
		p.VerticalDia = defaultVerticalDia
	}
	if p.HorizontalCount > 0 && p.HorizontalDia == 0 {
		p.HorizontalDia = defaultVerticalDia
	}

	if p.LinkDia == 0 {
		p.LinkDia = defaultLinkDia
	}
	if p.LinkSpacing == 0 {
		p.LinkSpacing = defaultLinkSpacing
	}
	if p.BendRadiusFactor == 0 {
		p.BendRadiusFactor = defaultBendRadiusFactor
	}
}

func validate(p *Parameters) error {
	lengths := []struct {
		name string
		v    float64
	}{
		{"span_m", p.Span},
		{"cantilever_length_m", p.CantileverLength},
		{"backspan_m", p.Backspan},
		{"width_m", p.Width},
		{"depth_m", p.Depth},
		{"flange_width_m", p.FlangeWidth},
		{"flange_thickness_m", p.FlangeThickness},
		{"wall_height_m", p.WallHeight},
		{"wall_thickness_m", p.WallThickness},
		{"wall_length_m", p.WallLength},
		{"base_depth_m", p.BaseDepth},
		{"base_width_m", p.BaseWidth},
		{"cover_m", p.Cover},
		{"cover_buried_m", p.CoverBuried},
		{"bottom_dia_m", p.BottomDia},
		{"top_dia_m", p.TopDia},
		{"hanger_dia_m", p.HangerDia},
		{"vertical_dia_m", p.VerticalDia},
		{"horizontal_dia_m", p.HorizontalDia},
		{"link_dia_m", p.LinkDia},
		{"link_spacing_m", p.LinkSpacing},
		{"bend_radius_factor", p.BendRadiusFactor},
	}
	for _, f := range lengths {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return InvalidField(f.name, "must be finite, got %v", f.v)
		}
		if f.v < 0 {
			return InvalidField(f.name, "must be non-negative, got %v", f.v)
		}
	}

	counts := []struct {
		name string
		v    int
	}{
		{"bottom_count", p.BottomCount},
		{"top_count", p.TopCount},
		{"hanger_count", p.HangerCount},
		{"vertical_count", p.VerticalCount},
		{"horizontal_count", p.HorizontalCount},
	}
	for _, f := range counts {
		if f.v < 0 {
			return InvalidField(f.name, "must be a non-negative integer, got %d", f.v)
		}
	}

	// Kind-specific required dimensions
	switch p.Kind {
	case Beam:
		if p.Span <= 0 {
			return InvalidField("span_m", "beam span is required")
		}
		if p.Width <= 0 || p.Depth <= 0 {
			return InvalidField("width_m", "beam section dimensions are required")
		}
		if p.Profile != ProfileRectangular && (p.FlangeWidth <= 0 || p.FlangeThickness <= 0) {
			return InvalidField("flange_width_m", "flanged profiles require flange dimensions")
		}
	case Cantilever:
		if p.CantileverLength <= 0 {
			return InvalidField("cantilever_length_m", "cantilever length is required")
		}
		if p.Backspan <= 0 {
			return InvalidField("backspan_m", "backspan is required")
		}
		if p.Width <= 0 || p.Depth <= 0 {
			return InvalidField("width_m", "section dimensions are required")
		}
	case Wall:
		if p.WallHeight <= 0 || p.WallThickness <= 0 || p.WallLength <= 0 {
			return InvalidField("wall_height_m", "wall stem dimensions are required")
		}
		if p.BaseDepth <= 0 || p.BaseWidth <= 0 {
			return InvalidField("base_depth_m", "wall base dimensions are required")
		}
	}

	return nil
}
