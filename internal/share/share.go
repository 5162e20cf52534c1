// Package share renders a calculation summary for the sharing surfaces:
// plain text for the clipboard, JSON, and PDF or XLSX downloads.
package share

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go-calculators/internal/calc"
)

// Format is a share artifact format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Exporter writes a summary in one format.
type Exporter interface {
	Export(w io.Writer, s calc.ShareableSummary) error
	ContentType() string
	Extension() string
}

// ParseFormat accepts a format name; empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatPDF, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported share format %q", s)
	}
}

// For returns the exporter for f.
func For(f Format) (Exporter, error) {
	switch f {
	case FormatText:
		return Text{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatPDF:
		return PDF{}, nil
	case FormatXLSX:
		return XLSX{}, nil
	default:
		return nil, fmt.Errorf("unsupported share format %q", f)
	}
}

// Filename derives a download name such as "bmi-calculator.pdf".
func Filename(s calc.ShareableSummary, e Exporter) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(s.Title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimSuffix(sb.String(), "-")
	if name == "" {
		name = "result"
	}
	return name + "." + e.Extension()
}

// ResultLine renders the headline as "Label: value unit".
func ResultLine(s calc.ShareableSummary) string {
	line := s.Result.Label + ": " + s.Result.Value
	if s.Result.Unit != "" {
		line += " " + s.Result.Unit
	}
	return line
}

// Text is the clipboard format.
type Text struct{}

func (Text) ContentType() string { return "text/plain; charset=utf-8" }
func (Text) Extension() string { return "txt" }

// Export writes the title, one line per input, and the result line.
func (Text) Export(w io.Writer, s calc.ShareableSummary) error {
	var sb strings.Builder
	sb.WriteString(s.Title)
	sb.WriteString("\n\n")
	for _, in := range s.Inputs {
		sb.WriteString(in.Label)
		sb.WriteString(": ")
		sb.WriteString(in.Value)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(ResultLine(s))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// JSON writes the summary as an indented JSON document.
type JSON struct{}

func (JSON) ContentType() string { return "application/json" }
func (JSON) Extension() string { return "json" }

func (JSON) Export(w io.Writer, s calc.ShareableSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
