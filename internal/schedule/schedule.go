// Package schedule turns detailed elements into a bar bending schedule:
// one row per distinct cut length, with BS 8666 style shape codes. Rows
// can be written as a text table, a PDF or a spreadsheet.
package schedule

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcd/internal/assemble"
	"github.com/alexiusacademia/gorcd/internal/detailing"
)

// Row is one schedule line.
type Row struct {
	Mark        string
	Member      string
	Role        string
	Count       int
	DiaMM       float64
	Shape       string // BS 8666 shape code
	CutLength   float64 // m, per bar
	TotalLength float64 // m
}

// shapeCode maps a reinforcement zone to its schedule shape code:
// straight bars 00, L-bent anchorages 11, closed links 51.
func shapeCode(zone detailing.Zone, bent bool) string {
	switch {
	case zone == detailing.ZoneVertical && bent:
		return "11"
	case bent:
		return "51"
	default:
		return "00"
	}
}

// FromResult flattens one element's bar groups into schedule rows. Bars of
// the same group sharing a cut length share a row; curtailed bars with two
// segment lengths produce separate rows in first-seen order.
func FromResult(member string, r *assemble.Result) []Row {
	var rows []Row
	mark := 0

	addRow := func(role string, dia float64, shape string, cut float64, count int) {
		// Merge with an existing row of identical shape and length.
		for i := range rows {
			if rows[i].Role == role && rows[i].Shape == shape &&
				rows[i].DiaMM == dia*1000 && rows[i].CutLength == cut {
				rows[i].Count += count
				rows[i].TotalLength += cut * float64(count)
				return
			}
		}
		mark++
		rows = append(rows, Row{
			Mark:        fmt.Sprintf("%s-%02d", member, mark),
			Member:      member,
			Role:        role,
			Count:       count,
			DiaMM:       dia * 1000,
			Shape:       shape,
			CutLength:   cut,
			TotalLength: cut * float64(count),
		})
	}

	for _, g := range r.Element.Groups {
		_, bent := r.Element.Paths[g.ID]
		shape := shapeCode(g.Role, bent)

		if bent {
			addRow(g.Role.String(), g.Dia, shape, g.BarLength, g.Count)
			continue
		}
		for i := range g.Classifications {
			for _, pl := range g.Classifications[i].Placements {
				addRow(g.Role.String(), g.Dia, shape, pl.Length, 1)
			}
		}
	}

	return rows
}

// FromAssembly flattens every span of an assembly, one member mark prefix
// per span, plus the splice laps at internal supports.
func FromAssembly(ar *assemble.AssemblyResult) []Row {
	var rows []Row
	for i := range ar.Spans {
		member := fmt.Sprintf("S%d", i+1)
		rows = append(rows, FromResult(member, ar.Spans[i].Result)...)

		if i == 0 {
			continue
		}
		bottom := ar.Spans[i].Result.Group("bottom")
		if bottom == nil {
			continue
		}
		lapCount := 0
		lapLength := 0.0
		for _, cls := range bottom.Classifications {
			if cls.SpliceCandidate {
				lapCount++
				lapLength = cls.LapLength
			}
		}
		if lapCount > 0 {
			rows = append(rows, Row{
				Mark:        fmt.Sprintf("%s-LAP", member),
				Member:      member,
				Role:        "splice",
				Count:       lapCount,
				DiaMM:       bottom.Dia * 1000,
				Shape:       "00",
				CutLength:   lapLength,
				TotalLength: lapLength * float64(lapCount),
			})
		}
	}
	return rows
}

// TotalLength sums the schedule.
func TotalLength(rows []Row) float64 {
	var total float64
	for _, r := range rows {
		total += r.TotalLength
	}
	return total
}

// WriteText writes the schedule as a tab-aligned table.
func WriteText(w io.Writer, rows []Row) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Mark\tRole\tNo.\tDia\tShape\tCut Length\tTotal\n")
	fmt.Fprintf(tw, "  ────\t────\t───\t───\t─────\t──────────\t─────\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "  %s\t%s\t%d\tT%.0f\t%s\t%.3f m\t%.3f m\n",
			r.Mark, r.Role, r.Count, r.DiaMM, r.Shape, r.CutLength, r.TotalLength)
	}
	fmt.Fprintf(tw, "  \t\t\t\t\tTotal:\t%.3f m\n", TotalLength(rows))
	tw.Flush()
}
