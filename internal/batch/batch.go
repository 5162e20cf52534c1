// Package batch runs one calculator over every row of a spreadsheet. The
// first row names the fields; each following row is one calculation.
package batch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"go-calculators/internal/calc"
)

// MaxRows bounds the data rows accepted in one workbook.
const MaxRows = 1000

var ErrEmptySheet = errors.New("sheet has no data rows")

// RowResult is the outcome of one data row. Row is the 1-based sheet row.
type RowResult struct {
	Row    int          `json:"row"`
	Result *calc.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// Report collects the row outcomes in sheet order.
type Report struct {
	Count  int         `json:"count"`
	Failed int         `json:"failed"`
	Rows   []RowResult `json:"rows"`
}

// Run reads the first sheet of an xlsx workbook and computes every non-empty
// row with d. Validation failures are reported per row; only unreadable
// workbooks and bad headers fail the whole run.
func Run(r io.Reader, d *calc.Definition) (Report, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Report{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return Report{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return Report{}, ErrEmptySheet
	}
	if len(rows)-1 > MaxRows {
		return Report{}, fmt.Errorf("too many rows: %d > %d", len(rows)-1, MaxRows)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if _, ok := d.Field(h); !ok {
			return Report{}, fmt.Errorf("column %d: calculator %q has no field %q", i+1, d.Slug, h)
		}
		header[i] = h
	}

	report := Report{Rows: make([]RowResult, 0, len(rows)-1)}
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		raw := make(map[string]string, len(header))
		for col, name := range header {
			if col < len(row) {
				raw[name] = row[col]
			}
		}

		rr := RowResult{Row: i + 2}
		res, err := d.RunMap(raw)
		if err != nil {
			rr.Error = err.Error()
			report.Failed++
		} else {
			rr.Result = &res
		}
		report.Rows = append(report.Rows, rr)
	}
	report.Count = len(report.Rows)
	return report, nil
}

// Template writes an empty workbook whose header row lists d's fields.
func Template(w io.Writer, d *calc.Definition) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(d.Fields))
	for i, field := range d.Fields {
		header[i] = field.Name
	}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
