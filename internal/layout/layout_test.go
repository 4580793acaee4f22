package layout

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gorcd/internal/element"
)

func TestAvailableWidth(t *testing.T) {
	// 300 mm section, 35 mm cover, 10 mm links, 25 mm bars
	got := AvailableWidth(0.300, 0.035, 0.010, 0.025)
	want := 0.185
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("AvailableWidth = %.6f, want %.6f", got, want)
	}
}

func TestOffsetsZeroAndSingle(t *testing.T) {
	got, err := Offsets(0.300, 0.035, 0.010, 0.025, 0)
	if err != nil || got != nil {
		t.Errorf("count 0: got %v, %v; want nil, nil", got, err)
	}

	got, err = Offsets(0.300, 0.035, 0.010, 0.025, 1)
	if err != nil {
		t.Fatalf("count 1: unexpected error %v", err)
	}
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("count 1: got %v, want [0]", got)
	}
}

func TestOffsetsFourBars(t *testing.T) {
	got, err := Offsets(0.300, 0.035, 0.010, 0.025, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d offsets, want 4", len(got))
	}

	// Outermost bars sit at ±availableWidth/2
	if math.Abs(got[0]+0.0925) > 1e-12 || math.Abs(got[3]-0.0925) > 1e-12 {
		t.Errorf("extreme offsets = %.6f, %.6f, want ±0.0925", got[0], got[3])
	}

	spacing := 0.185 / 3
	for i := 1; i < 4; i++ {
		if math.Abs((got[i]-got[i-1])-spacing) > 1e-12 {
			t.Errorf("spacing between bar %d and %d = %.9f, want %.9f",
				i-1, i, got[i]-got[i-1], spacing)
		}
	}
}

func TestOffsetsSymmetryExact(t *testing.T) {
	for _, count := range []int{2, 3, 4, 5, 7, 10} {
		got, err := Offsets(0.450, 0.030, 0.010, 0.020, count)
		if err != nil {
			t.Fatalf("count %d: unexpected error %v", count, err)
		}
		for i := range got {
			// Exact in floating point, not merely within tolerance.
			if got[i] != -got[count-1-i] {
				t.Errorf("count %d: offsets[%d]=%v is not the exact mirror of offsets[%d]=%v",
					count, i, got[i], count-1-i, got[count-1-i])
			}
			if i > 0 && got[i] <= got[i-1] {
				t.Errorf("count %d: offsets not strictly increasing at %d: %v", count, i, got)
			}
		}
		if count%2 == 1 && got[count/2] != 0 {
			t.Errorf("count %d: middle bar off centerline: %v", count, got[count/2])
		}
	}
}

func TestOffsetsSectionTooSmall(t *testing.T) {
	// 100 mm section cannot hold two 25 mm bars inside 35 mm cover + links.
	_, err := Offsets(0.100, 0.035, 0.010, 0.025, 2)
	if err == nil {
		t.Fatal("expected an error for an oversubscribed section")
	}
	if !element.IsKind(err, element.ErrSectionTooSmall) {
		t.Errorf("got %v, want a section-too-small error", err)
	}
}

func TestOffsetsSingleBarIgnoresWidth(t *testing.T) {
	// A single bar always sits on the centerline, even in a slim section.
	got, err := Offsets(0.080, 0.035, 0.010, 0.025, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("got %v, want [0]", got)
	}
}
