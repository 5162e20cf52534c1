package share

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"go-calculators/internal/calc"
)

const summarySheet = "Summary"

// XLSX writes a workbook with one Summary sheet: the title, an input table
// and the result row.
type XLSX struct{}

func (XLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (XLSX) Extension() string { return "xlsx" }

func (XLSX) Export(w io.Writer, s calc.ShareableSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	rows := [][]any{{s.Title}, {}, {"Input", "Value"}}
	for _, in := range s.Inputs {
		rows = append(rows, []any{in.Label, in.Value})
	}
	rows = append(rows, []any{}, []any{s.Result.Label, s.Result.Value, s.Result.Unit})

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	last := len(rows)
	for _, cell := range []string{"A1", "A3", "B3", fmt.Sprintf("A%d", last), fmt.Sprintf("B%d", last)} {
		if err := f.SetCellStyle(summarySheet, cell, cell, bold); err != nil {
			return fmt.Errorf("style %s: %w", cell, err)
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 32); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
