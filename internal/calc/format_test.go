package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "22.86", FormatFixed(22.857, 2))
	assert.Equal(t, "1.01", FormatFixed(1.005, 2))
	assert.Equal(t, "3", FormatFixed(2.5, 0))
	assert.Equal(t, NotAvailable, FormatFixed(math.NaN(), 2))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$954.83", FormatCurrency(954.8305909309076))
	assert.Equal(t, "$1,234.50", FormatCurrency(1234.5))
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "-$20.00", FormatCurrency(-20))
	assert.Equal(t, NotAvailable, FormatCurrency(math.Inf(1)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.50%", FormatPercent(12.5, 2))
	assert.Equal(t, NotAvailable, FormatPercent(math.Inf(-1), 1))
}

func TestNumSanitisesNonFinite(t *testing.T) {
	v := Num("Payment", math.NaN(), Currency, "")
	assert.Equal(t, NotAvailable, v.Display)
	assert.Equal(t, 0.0, v.Number)
}
