package batch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-calculators/internal/catalog"
)

func workbook(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestRunComputesEveryRow(t *testing.T) {
	buf := workbook(t,
		[]any{"bill", "tip", "people"},
		[]any{"100", "20", "2"},
		[]any{},
		[]any{"50", "10", "0"},
		[]any{"80", "", "4"},
	)

	report, err := Run(buf, catalog.Tip())
	require.NoError(t, err)
	require.Equal(t, 3, report.Count)
	assert.Equal(t, 1, report.Failed)

	first := report.Rows[0]
	assert.Equal(t, 2, first.Row)
	require.NotNil(t, first.Result)
	assert.Equal(t, "$60.00", first.Result.Primary.Display)

	assert.Equal(t, 4, report.Rows[1].Row)
	assert.Equal(t, "Number of people must be at least 1", report.Rows[1].Error)

	// blank tip cell is coerced to zero
	assert.Equal(t, "$20.00", report.Rows[2].Result.Primary.Display)
}

func TestRunRejectsUnknownColumns(t *testing.T) {
	buf := workbook(t, []any{"bill", "colour"}, []any{"1", "red"})
	_, err := Run(buf, catalog.Tip())
	assert.ErrorContains(t, err, `no field "colour"`)
}

func TestRunRejectsEmptySheet(t *testing.T) {
	buf := workbook(t, []any{"bill"})
	_, err := Run(buf, catalog.Tip())
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestRunRejectsGarbage(t *testing.T) {
	_, err := Run(bytes.NewBufferString("not a workbook"), catalog.Tip())
	assert.Error(t, err)
}

func TestTemplateListsFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Template(&buf, catalog.Loan()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, []string{"amount", "rate", "years"}, rows[0])
}
