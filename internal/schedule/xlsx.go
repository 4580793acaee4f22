package schedule

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the schedule as a spreadsheet, one row per schedule
// line plus a total row.
func WriteXLSX(rows []Row, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headers := []string{"Mark", "Member", "Role", "No.", "Dia (mm)", "Shape", "Cut Length (m)", "Total (m)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for rIdx, r := range rows {
		values := []interface{}{r.Mark, r.Member, r.Role, r.Count, r.DiaMM, r.Shape, r.CutLength, r.TotalLength}
		for cIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	totalCell := fmt.Sprintf("H%d", len(rows)+2)
	if err := f.SetCellValue(sheet, totalCell, TotalLength(rows)); err != nil {
		return err
	}

	return f.SaveAs(filename)
}
