package share

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"go-calculators/internal/calc"
)

// PDF renders a one-page A4 report.
type PDF struct{}

func (PDF) ContentType() string { return "application/pdf" }
func (PDF) Extension() string { return "pdf" }

func (PDF) Export(w io.Writer, s calc.ShareableSummary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(s.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(s.Title))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, in := range s.Inputs {
		pdf.CellFormat(80, 6, tr(in.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(in.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 8, tr(ResultLine(s)), "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
