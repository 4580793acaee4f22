package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWritePDF(t *testing.T) {
	rows := FromResult("B1", detailedBeam(t))

	name := filepath.Join(t.TempDir(), "schedule.pdf")
	if err := WritePDF(rows, "Beam B1", name); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}

	info, err := os.Stat(name)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("pdf output is empty")
	}
}

func TestWriteXLSX(t *testing.T) {
	rows := FromResult("B1", detailedBeam(t))

	name := filepath.Join(t.TempDir(), "schedule.xlsx")
	if err := WriteXLSX(rows, name); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenFile(name)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	mark, err := f.GetCellValue(sheet, "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if mark != rows[0].Mark {
		t.Errorf("first mark %q, want %q", mark, rows[0].Mark)
	}
}
