// Package catalog binds every domain formula to a calculator definition:
// its form fields, the coercion of those fields, and the projection of the
// formula output into a display-ready result.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"go-calculators/internal/calc"
)

// All returns a fresh definition of every calculator.
func All() []*calc.Definition {
	return []*calc.Definition{
		BMI(),
		Loan(),
		Mortgage(),
		SimpleInterest(),
		CompoundInterest(),
		SIP(),
		Percentage(),
		Discount(),
		Tip(),
		GPA(),
		Fraction(),
		Triangle(),
		Roman(),
		BAC(),
		SmartPoints(),
		BodyType(),
		GolfHandicap(),
		UnitConverter(),
		Expression(),
	}
}

// Default returns a registry holding All.
func Default() *calc.Registry {
	r, err := calc.NewRegistry(All()...)
	if err != nil {
		panic(err)
	}
	return r
}

func number(name, label, unit, def string) calc.FieldSpec {
	return calc.FieldSpec{Name: name, Label: label, Kind: calc.KindNumber, Unit: unit, Default: def}
}

func choice(name, label, def string, options ...string) calc.FieldSpec {
	return calc.FieldSpec{Name: name, Label: label, Kind: calc.KindChoice, Default: def, Options: options}
}

func text(name, label, def string) calc.FieldSpec {
	return calc.FieldSpec{Name: name, Label: label, Kind: calc.KindText, Default: def}
}

// pick returns the selected option of a choice field. An empty value falls
// back to the default.
func pick(v calc.Values, f calc.FieldSpec) (string, error) {
	c := v.Choice(f.Name)
	if c == "" {
		c = f.Default
	}
	if !slices.Contains(f.Options, c) {
		return "", calc.Invalid(f.Name, fmt.Sprintf("%s must be one of %s", f.Label, strings.Join(f.Options, ", ")))
	}
	return c, nil
}

// notes turns ladder notes into a recommendation list, skipping empty ones.
func notes(ns ...string) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// splitList splits a list field on commas, semicolons and newlines.
func splitList(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isWhole(f float64) bool {
	return f == float64(int64(f))
}
