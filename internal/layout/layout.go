// Package layout computes lateral bar positions across a section.
package layout

import (
	"github.com/alexiusacademia/gorcd/internal/element"
)

// AvailableWidth is the clear width between bar centerlines at the section
// extremes: section width less cover, link and half a bar diameter each side.
func AvailableWidth(sectionWidth, cover, linkDia, barDia float64) float64 {
	return sectionWidth - 2*(cover+linkDia+barDia/2)
}

// Offsets returns the signed lateral positions of count parallel bars,
// measured from the section centerline. The sequence is strictly
// increasing and exactly symmetric about zero; for an odd count the middle
// bar sits on the centerline.
func Offsets(sectionWidth, cover, linkDia, barDia float64, count int) ([]float64, error) {
	if count == 0 {
		return nil, nil
	}
	if count == 1 {
		return []float64{0}, nil
	}

	aw := AvailableWidth(sectionWidth, cover, linkDia, barDia)
	if aw < 0 {
		return nil, element.SectionTooSmall(
			"available width %.4f m for %d bars of %.0f mm in a %.3f m section",
			aw, count, barDia*1000, sectionWidth)
	}
	if aw == 0 {
		// count > 1 bars cannot occupy distinct positions
		return nil, element.SectionTooSmall(
			"zero available width for %d bars in a %.3f m section", count, sectionWidth)
	}

	spacing := aw / float64(count-1)
	offsets := make([]float64, count)

	// Mirror the halves so symmetry holds exactly in floating point.
	for i := 0; i < count/2; i++ {
		x := -aw/2 + float64(i)*spacing
		offsets[i] = x
		offsets[count-1-i] = -x
	}
	if count%2 == 1 {
		offsets[count/2] = 0
	}

	return offsets, nil
}
