package formula

import (
	"errors"
	"sort"
)

var (
	ErrUnknownCategory = errors.New("unknown unit category")
	ErrUnknownUnit     = errors.New("unknown unit")
)

// Unit categories.
const (
	CategoryLength      = "length"
	CategoryMass        = "mass"
	CategoryVolume      = "volume"
	CategoryTemperature = "temperature"
)

// unitFactors maps each linear category to unit → size in the base unit
// (metre, kilogram, litre).
var unitFactors = map[string]map[string]float64{
	CategoryLength: {
		"mm": 0.001,
		"cm": 0.01,
		"m":  1,
		"km": 1000,
		"in": 0.0254,
		"ft": 0.3048,
		"yd": 0.9144,
		"mi": 1609.344,
	},
	CategoryMass: {
		"mg": 0.000001,
		"g":  0.001,
		"kg": 1,
		"t":  1000,
		"oz": 0.028349523125,
		"lb": 0.45359237,
		"st": 6.35029318,
	},
	CategoryVolume: {
		"ml":   0.001,
		"l":    1,
		"m3":   1000,
		"tsp":  0.00492892159375,
		"tbsp": 0.01478676478125,
		"floz": 0.0295735295625,
		"cup":  0.2365882365,
		"pt":   0.473176473,
		"qt":   0.946352946,
		"gal":  3.785411784,
	},
}

var temperatureUnits = []string{"c", "f", "k"}

// Categories lists the supported unit categories.
func Categories() []string {
	return []string{CategoryLength, CategoryMass, CategoryVolume, CategoryTemperature}
}

// Units lists the units of category in sorted order.
func Units(category string) ([]string, error) {
	if category == CategoryTemperature {
		return append([]string(nil), temperatureUnits...), nil
	}
	table, ok := unitFactors[category]
	if !ok {
		return nil, ErrUnknownCategory
	}
	out := make([]string, 0, len(table))
	for u := range table {
		out = append(out, u)
	}
	sort.Strings(out)
	return out, nil
}

// Convert converts v between two units of the same category.
func Convert(category, from, to string, v float64) (float64, error) {
	if category == CategoryTemperature {
		return convertTemperature(from, to, v)
	}
	table, ok := unitFactors[category]
	if !ok {
		return 0, ErrUnknownCategory
	}
	f, ok := table[from]
	if !ok {
		return 0, ErrUnknownUnit
	}
	t, ok := table[to]
	if !ok {
		return 0, ErrUnknownUnit
	}
	return v * f / t, nil
}

func convertTemperature(from, to string, v float64) (float64, error) {
	var kelvin float64
	switch from {
	case "c":
		kelvin = v + 273.15
	case "f":
		kelvin = (v-32)*5/9 + 273.15
	case "k":
		kelvin = v
	default:
		return 0, ErrUnknownUnit
	}

	switch to {
	case "c":
		return kelvin - 273.15, nil
	case "f":
		return (kelvin-273.15)*9/5 + 32, nil
	case "k":
		return kelvin, nil
	default:
		return 0, ErrUnknownUnit
	}
}
