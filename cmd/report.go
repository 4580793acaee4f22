package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcd/internal/assemble"
	"github.com/alexiusacademia/gorcd/internal/detailing"
	"github.com/alexiusacademia/gorcd/internal/diagram"
	"github.com/alexiusacademia/gorcd/internal/schedule"
)

// printBarGroups prints the resolved layout of every bar group: counts,
// diameters and the lateral offsets consumed by section drawings.
func printBarGroups(r *assemble.Result) {
	fmt.Println("BAR GROUPS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Group\tRole\tNo.\tDia\tBar Length\tGroup Total\n")
	fmt.Fprintf(w, "  ─────\t────\t───\t───\t──────────\t───────────\n")
	for _, g := range r.Element.Groups {
		fmt.Fprintf(w, "  %s\t%s\t%d\tT%.0f\t%.3f m\t%.3f m\n",
			g.ID, g.Role, g.Count, g.Dia*1000, g.BarLength, g.TotalLength)
	}
	w.Flush()
	fmt.Println()

	for _, g := range r.Element.Groups {
		if len(g.Offsets) == 0 {
			continue
		}
		fmt.Printf("  %s offsets (mm):", g.ID)
		for _, off := range g.Offsets {
			fmt.Printf(" %+.1f", off*1000)
		}
		fmt.Println()
	}
	fmt.Println()
}

// printPlacements prints the curtailment outcome per bar group.
func printPlacements(r *assemble.Result) {
	fmt.Println("CURTAILMENT / PLACEMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Group\tBar\tStart\tLength\tSplice\n")
	fmt.Fprintf(w, "  ─────\t───\t─────\t──────\t──────\n")
	for _, g := range r.Element.Groups {
		for i, cls := range g.Classifications {
			splice := ""
			if cls.SpliceCandidate {
				splice = fmt.Sprintf("lap %.3f m", cls.LapLength)
			}
			for _, pl := range cls.Placements {
				fmt.Fprintf(w, "  %s\t%d\t%+.3f m\t%.3f m\t%s\n",
					g.ID, i+1, pl.StartOffset, pl.Length, splice)
			}
		}
	}
	w.Flush()
	fmt.Println()
}

// printPrimitives prints a summary of the renderable primitive list.
func printPrimitives(prims []assemble.Primitive) {
	counts := map[string]int{}
	order := []string{}
	for _, p := range prims {
		key := fmt.Sprintf("%s (%s)", p.Kind, p.Role)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	fmt.Println("RENDER PRIMITIVES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range order {
		fmt.Fprintf(w, "  %s\t%d\n", key, counts[key])
	}
	fmt.Fprintf(w, "  total\t%d\n", len(prims))
	w.Flush()
	fmt.Println()
}

// sectionView builds the diagram input from a detailed element.
func sectionView(r *assemble.Result) diagram.SectionView {
	p := r.Element.Params
	v := diagram.SectionView{
		Width:   p.Width,
		Depth:   p.Depth,
		Cover:   p.Cover,
		LinkDia: p.LinkDia,
	}
	for _, g := range r.Element.Groups {
		switch g.Role {
		case detailing.ZoneBottom:
			v.BottomOffsets, v.BottomDia = g.Offsets, g.Dia
		case detailing.ZoneTop:
			v.TopOffsets, v.TopDia = g.Offsets, g.Dia
		case detailing.ZoneHanger:
			v.HangerOffsets, v.HangerDia = g.Offsets, g.Dia
		}
	}
	return v
}

// writeScheduleOutputs prints the schedule table and writes the optional
// PDF/XLSX files.
func writeScheduleOutputs(rows []schedule.Row, title, pdfFile, xlsxFile string) {
	fmt.Println("BAR BENDING SCHEDULE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	schedule.WriteText(os.Stdout, rows)
	fmt.Println()

	if pdfFile != "" {
		if err := schedule.WritePDF(rows, title, pdfFile); err != nil {
			fmt.Printf("Error writing schedule PDF: %v\n", err)
		} else {
			fmt.Printf("Schedule PDF written to: %s\n", pdfFile)
		}
	}
	if xlsxFile != "" {
		if err := schedule.WriteXLSX(rows, xlsxFile); err != nil {
			fmt.Printf("Error writing schedule spreadsheet: %v\n", err)
		} else {
			fmt.Printf("Schedule spreadsheet written to: %s\n", xlsxFile)
		}
	}
}
