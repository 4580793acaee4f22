package schedule

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// WritePDF writes the schedule as an A4 bar bending schedule document.
func WritePDF(rows []Row, title, filename string) error {
	if title == "" {
		title = "Bar Bending Schedule"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	// Header row
	widths := []float64{25, 25, 15, 15, 18, 30, 30}
	headers := []string{"Mark", "Role", "No.", "Dia", "Shape", "Cut Length (m)", "Total (m)"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		cells := []string{
			r.Mark,
			r.Role,
			fmt.Sprintf("%d", r.Count),
			fmt.Sprintf("T%.0f", r.DiaMM),
			r.Shape,
			fmt.Sprintf("%.3f", r.CutLength),
			fmt.Sprintf("%.3f", r.TotalLength),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 10)
	for i := 0; i < len(widths)-1; i++ {
		align := "C"
		label := ""
		if i == len(widths)-2 {
			label = "Total:"
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, label, "", 0, align, false, 0, "")
	}
	pdf.CellFormat(widths[len(widths)-1], 8, fmt.Sprintf("%.3f", TotalLength(rows)), "1", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(filename)
}
