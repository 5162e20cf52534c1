package share

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-calculators/internal/calc"
	"go-calculators/internal/catalog"
)

func bmiSummary(t *testing.T) calc.ShareableSummary {
	t.Helper()
	d := catalog.BMI()
	raw := map[string]string{"weight": "70", "height_cm": "175"}
	res, err := d.RunMap(raw)
	require.NoError(t, err)
	return calc.SummarizeMap(d, raw, res)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("docx")
	assert.Error(t, err)
}

func TestTextExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text{}.Export(&buf, bmiSummary(t)))

	want := "BMI Calculator\n\n" +
		"Unit system: metric\n" +
		"Weight (kg / lb): 70\n" +
		"Height (cm): 175\n" +
		"Height (ft): \n" +
		"Height (in): \n" +
		"\nBMI: 22.9 kg/m²\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Export(&buf, bmiSummary(t)))

	var got calc.ShareableSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "22.9", got.Result.Value)
	assert.Len(t, got.Inputs, 5)
}

func TestPDFExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDF{}.Export(&buf, bmiSummary(t)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestXLSXExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSX{}.Export(&buf, bmiSummary(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, "BMI Calculator", rows[0][0])
	assert.Equal(t, []string{"Input", "Value"}, rows[2])
	last := rows[len(rows)-1]
	assert.Equal(t, []string{"BMI", "22.9", "kg/m²"}, last)
}

func TestFilename(t *testing.T) {
	s := bmiSummary(t)
	assert.Equal(t, "bmi-calculator.pdf", Filename(s, PDF{}))
	assert.Equal(t, "result.txt", Filename(calc.ShareableSummary{Title: "!!"}, Text{}))

	for _, f := range []Format{FormatText, FormatJSON, FormatPDF, FormatXLSX} {
		e, err := For(f)
		require.NoError(t, err)
		assert.NotEmpty(t, e.ContentType())
	}
}
