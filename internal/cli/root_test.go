package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-calculators/internal/calc"
	"go-calculators/internal/catalog"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test", catalog.Default())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(catalog.All()))
	assert.True(t, strings.HasPrefix(lines[0], "bac"))
	assert.Contains(t, out, "Mortgage Calculator")
}

func TestShow(t *testing.T) {
	out, err := execute(t, "show", "mortgage")
	require.NoError(t, err)
	assert.Contains(t, out, "down_payment")
	assert.Contains(t, out, "Home price")

	_, err = execute(t, "show", "nope")
	assert.ErrorContains(t, err, `unknown calculator "nope"`)
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "loan", "--set", "amount=10000", "--set", "rate=5", "--set", "years=1")
	require.NoError(t, err)
	assert.Contains(t, out, "$856.07")
	assert.NotContains(t, out, "incomplete input")
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", "roman", "--set", "value=2024", "--json")
	require.NoError(t, err)

	var res calc.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "MMXXIV", res.Primary.Display)
}

func TestRunFlagsIncompleteInput(t *testing.T) {
	out, err := execute(t, "run", "bmi")
	require.NoError(t, err)
	assert.Contains(t, out, "(incomplete input)")
}

func TestRunValidationError(t *testing.T) {
	_, err := execute(t, "run", "tip", "--set", "bill=10", "--set", "people=0")
	_, ok := calc.AsValidation(err)
	assert.True(t, ok)
	assert.EqualError(t, err, "Number of people must be at least 1")
}

func TestRunRejectsBadSets(t *testing.T) {
	_, err := execute(t, "run", "tip", "--set", "bill")
	assert.ErrorContains(t, err, "expected name=value")

	_, err = execute(t, "run", "tip", "--set", "colour=red")
	assert.ErrorContains(t, err, `no field "colour"`)
}

func TestShareToStdoutAndFile(t *testing.T) {
	out, err := execute(t, "share", "tip", "--set", "bill=100")
	require.NoError(t, err)
	assert.Contains(t, out, "Tip Calculator")
	assert.Contains(t, out, "Total per person: $115.00")

	path := filepath.Join(t.TempDir(), "tip.pdf")
	_, err = execute(t, "share", "tip", "--set", "bill=100", "-f", "pdf", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestBatchTemplateAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tip.xlsx")
	_, err := execute(t, "batch", "tip", path, "--template")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"100", "20", "4"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"100", "20", "0"}))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	out, err := execute(t, "batch", "tip", path)
	require.NoError(t, err)
	assert.Contains(t, out, "$30.00")
	assert.Contains(t, out, "error: Number of people must be at least 1")
	assert.Contains(t, out, "2 rows, 1 failed")
}

func TestCompleteSlugs(t *testing.T) {
	slugs, _ := completeSlugs(catalog.Default())(nil, nil, "")
	assert.Len(t, slugs, len(catalog.All()))
	assert.Equal(t, "bac\tBAC Calculator", slugs[0])
}
