package diagram

import (
	"fmt"
	"strings"
)

// SectionView holds the resolved section data for drawing: outline
// dimensions, link cage and the lateral bar offsets of each zone. All
// values in meters; offsets are measured from the section centerline.
type SectionView struct {
	// Section outline
	Width float64
	Depth float64

	// Link cage
	Cover   float64
	LinkDia float64

	// Main bars
	BottomOffsets []float64
	BottomDia     float64
	TopOffsets    []float64
	TopDia        float64
	HangerOffsets []float64
	HangerDia     float64
}

// DrawASCIISection renders the section with its bar positions:
// top/hanger steel in the upper corner region, bottom steel above the
// soffit, the link loop dashed just inside the cover line.
func DrawASCIISection(v SectionView) string {
	var sb strings.Builder

	widthChars := 36
	heightChars := 18

	// Character rows of each feature
	coverRows := int(float64(heightChars) * v.Cover / v.Depth)
	if coverRows < 1 {
		coverRows = 1
	}
	topRow := coverRows
	bottomRow := heightChars - 1 - coverRows

	// Map a lateral offset to a column inside the outline
	col := func(offset float64) int {
		c := int((offset/v.Width + 0.5) * float64(widthChars))
		if c < 0 {
			c = 0
		}
		if c >= widthChars {
			c = widthChars - 1
		}
		return c
	}

	sb.WriteString("\n")
	sb.WriteString("  SECTION VIEW\n")
	sb.WriteString("  ────────────\n")

	for i := 0; i <= heightChars; i++ {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
			continue
		}
		if i == heightChars {
			sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
			continue
		}

		row := []rune(strings.Repeat(" ", widthChars))

		// Link cage verticals
		if i > coverRows && i < heightChars-coverRows {
			linkCol := int(float64(widthChars) * v.Cover / v.Width)
			if linkCol >= 1 && linkCol < widthChars-1 {
				row[linkCol] = '┊'
				row[widthChars-1-linkCol] = '┊'
			}
		}

		topSteel := v.TopOffsets
		if len(topSteel) == 0 {
			topSteel = v.HangerOffsets
		}
		if i == topRow {
			for _, off := range topSteel {
				row[col(off)] = '●'
			}
		}
		if i == bottomRow {
			for _, off := range v.BottomOffsets {
				row[col(off)] = '●'
			}
		}

		suffix := ""
		switch i {
		case topRow:
			if len(v.TopOffsets) > 0 {
				suffix = fmt.Sprintf(" ◄─ %d T%.0f top", len(v.TopOffsets), v.TopDia*1000)
			} else if len(v.HangerOffsets) > 0 {
				suffix = fmt.Sprintf(" ◄─ %d T%.0f hangers", len(v.HangerOffsets), v.HangerDia*1000)
			}
		case bottomRow:
			if len(v.BottomOffsets) > 0 {
				suffix = fmt.Sprintf(" ◄─ %d T%.0f bottom", len(v.BottomOffsets), v.BottomDia*1000)
			}
		}

		sb.WriteString(fmt.Sprintf("  │%s│%s\n", string(row), suffix))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Section %0.f x %.0f mm, cover %.0f mm, links T%.0f\n",
		v.Width*1000, v.Depth*1000, v.Cover*1000, v.LinkDia*1000))
	sb.WriteString("  ● = bar position  ┊ = link leg\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
