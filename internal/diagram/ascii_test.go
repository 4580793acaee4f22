package diagram

import (
	"strings"
	"testing"
)

func TestDrawASCIISection(t *testing.T) {
	out := DrawASCIISection(SectionView{
		Width: 0.3, Depth: 0.5,
		Cover: 0.030, LinkDia: 0.010,
		BottomOffsets: []float64{-0.0925, 0, 0.0925},
		BottomDia:     0.016,
		TopOffsets:    []float64{-0.0945, 0.0945},
		TopDia:        0.012,
	})

	for _, needle := range []string{"SECTION VIEW", "●", "┊", "3 T16 bottom", "2 T12 top", "300 x 500 mm"} {
		if !strings.Contains(out, needle) {
			t.Errorf("section view missing %q:\n%s", needle, out)
		}
	}
}

func TestDrawASCIISectionHangersLabelled(t *testing.T) {
	out := DrawASCIISection(SectionView{
		Width: 0.3, Depth: 0.5,
		Cover: 0.030, LinkDia: 0.010,
		BottomOffsets: []float64{-0.09, 0.09},
		BottomDia:     0.016,
		HangerOffsets: []float64{-0.09, 0.09},
		HangerDia:     0.016,
	})
	if !strings.Contains(out, "2 T16 hangers") {
		t.Errorf("hanger annotation missing:\n%s", out)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("TOTALS", []string{"Steel: 42.000 m", "Links: 40"})
	for _, needle := range []string{"TOTALS", "Steel: 42.000 m", "╔", "╚"} {
		if !strings.Contains(out, needle) {
			t.Errorf("summary box missing %q:\n%s", needle, out)
		}
	}
}
