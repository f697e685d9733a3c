package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/prepdeck/prepdeck/internal/exam"
)

func TestWriteReports(t *testing.T) {
	reports := []exam.Report{
		{
			ID:             "r1",
			Subject:        "Math",
			Topic:          "Fractions",
			Score:          75,
			TotalMarks:     8,
			MarksScored:    6,
			TotalQuestions: 4,
			CorrectCount:   3,
			TimeTakenSecs:  300,
			CreatedAt:      time.Date(2025, 6, 11, 10, 30, 0, 0, time.UTC),
			WeakAreas:      []string{"Division", "Decimals"},
		},
		{
			ID:        "r2",
			Subject:   "Science",
			Topic:     "Plants",
			Score:     100,
			CreatedAt: time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteReports(reports, path); err != nil {
		t.Fatalf("write reports: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want header + 2 data rows", len(rows))
	}

	if rows[0][0] != "Date" || rows[0][1] != "Subject" {
		t.Errorf("unexpected header row: %v", rows[0])
	}

	first := rows[1]
	if first[1] != "Math" || first[2] != "Fractions" {
		t.Errorf("row 1 = %v, want Math / Fractions", first)
	}
	if first[9] != "Division, Decimals" {
		t.Errorf("weak areas cell = %q", first[9])
	}

	second := rows[2]
	if second[1] != "Science" {
		t.Errorf("row 2 = %v, want Science", second)
	}
}

func TestWriteReportsEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteReports(nil, path); err != nil {
		t.Fatalf("write reports: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want header only", len(rows))
	}
}
