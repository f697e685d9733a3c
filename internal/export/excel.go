package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/prepdeck/prepdeck/internal/exam"
)

// SheetName is the worksheet holding the report history.
const SheetName = "Reports"

var headers = []string{
	"Date", "Subject", "Chapter", "Score (%)", "Marks Scored",
	"Total Marks", "Questions", "Correct", "Duration (s)", "Weak Areas",
}

// WriteReports writes the report history to an .xlsx workbook at path,
// one row per report, oldest first.
func WriteReports(reports []exam.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("write header %q: %w", h, err)
		}
	}

	for i, r := range reports {
		values := []any{
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Subject,
			r.Topic,
			r.Score,
			r.MarksScored,
			r.TotalMarks,
			r.TotalQuestions,
			r.CorrectCount,
			r.TimeTakenSecs,
			strings.Join(r.WeakAreas, ", "),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("row %d cell: %w", i+2, err)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", i+2, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
