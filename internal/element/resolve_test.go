package element

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestResolveBeamDefaults(t *testing.T) {
	p, err := Resolve(Beam, Parameters{
		Span: 6.0, Width: 0.3, Depth: 0.5,
		BottomCount: 3, TopCount: 2,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if p.Cover != 0.030 {
		t.Errorf("cover %.3f, want default 0.030", p.Cover)
	}
	if p.BottomDia != 0.016 {
		t.Errorf("bottom dia %.3f, want default 0.016", p.BottomDia)
	}
	if p.TopDia != 0.012 {
		t.Errorf("top dia %.3f, want default 0.012", p.TopDia)
	}
	if p.LinkDia != 0.010 || p.LinkSpacing != 0.150 {
		t.Errorf("links %.3f @ %.3f, want defaults 0.010 @ 0.150", p.LinkDia, p.LinkSpacing)
	}
	if p.BendRadiusFactor != 4 {
		t.Errorf("bend radius factor %.1f, want default 4", p.BendRadiusFactor)
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	raw := Parameters{Span: 6.0, Width: 0.3, Depth: 0.5, BottomCount: 3}
	_, err := Resolve(Beam, raw)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if raw.Cover != 0 || raw.BottomDia != 0 {
		t.Errorf("input record was mutated: %+v", raw)
	}
}

func TestResolveExplicitValuesKept(t *testing.T) {
	p, err := Resolve(Beam, Parameters{
		Span: 6.0, Width: 0.3, Depth: 0.5,
		Cover: 0.040, BottomCount: 3, BottomDia: 0.025,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Cover != 0.040 || p.BottomDia != 0.025 {
		t.Errorf("explicit values overridden: cover %.3f dia %.3f", p.Cover, p.BottomDia)
	}
}

func TestResolveWallCovers(t *testing.T) {
	p, err := Resolve(Wall, Parameters{
		WallHeight: 3.0, WallThickness: 0.25, WallLength: 4.0,
		BaseDepth: 0.4, BaseWidth: 2.0,
		VerticalCount: 10, HorizontalCount: 8,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Cover != 0.030 {
		t.Errorf("exposed cover %.3f, want 0.030", p.Cover)
	}
	if p.CoverBuried != 0.050 {
		t.Errorf("buried cover %.3f, want 0.050", p.CoverBuried)
	}
	if p.VerticalDia != 0.012 || p.HorizontalDia != 0.012 {
		t.Errorf("wall bar dias %.3f / %.3f, want defaults 0.012", p.VerticalDia, p.HorizontalDia)
	}
}

func TestResolveRejectsBadFields(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		raw  Parameters
	}{
		{"nan span", Beam, Parameters{Span: math.NaN(), Width: 0.3, Depth: 0.5}},
		{"inf depth", Beam, Parameters{Span: 6, Width: 0.3, Depth: math.Inf(1)}},
		{"negative width", Beam, Parameters{Span: 6, Width: -0.3, Depth: 0.5}},
		{"negative count", Beam, Parameters{Span: 6, Width: 0.3, Depth: 0.5, BottomCount: -1}},
		{"missing span", Beam, Parameters{Width: 0.3, Depth: 0.5}},
		{"flanged without flange", Beam, Parameters{Span: 6, Width: 0.3, Depth: 0.5, Profile: ProfileTSection}},
		{"missing backspan", Cantilever, Parameters{CantileverLength: 2.5, Width: 0.3, Depth: 0.5}},
		{"missing base", Wall, Parameters{WallHeight: 3, WallThickness: 0.25, WallLength: 4}},
	}
	for _, c := range cases {
		_, err := Resolve(c.kind, c.raw)
		if !IsKind(err, ErrInvalidField) {
			t.Errorf("%s: got %v, want an invalid-field error", c.name, err)
		}
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("span 2: %w", InvalidField("span_m", "beam span is required"))
	if !IsKind(err, ErrInvalidField) {
		t.Error("IsKind should see through fmt.Errorf wrapping")
	}
	if IsKind(err, ErrPolicyViolation) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(errors.New("plain"), ErrInvalidField) {
		t.Error("IsKind matched a non-config error")
	}
}
