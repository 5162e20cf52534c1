package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go-calculators/internal/calc"
	"go-calculators/internal/formula"
)

// Terms above 2^53 are not exact as float64 inputs.
const maxFractionTerm = 1 << 53

var fractionOp = choice("op", "Operation", "+", "+", "-", "*", "/")

// Fraction adds, subtracts, multiplies or divides two fractions.
func Fraction() *calc.Definition {
	return &calc.Definition{
		Slug:        "fraction",
		Title:       "Fraction Calculator",
		Description: "Arithmetic on two fractions with the answer in lowest terms.",
		Fields: []calc.FieldSpec{
			number("n1", "First numerator", "", ""),
			number("d1", "First denominator", "", "1"),
			fractionOp,
			number("n2", "Second numerator", "", ""),
			number("d2", "Second denominator", "", "1"),
		},
		Compute: computeFraction,
	}
}

func computeFraction(v calc.Values) (calc.Result, error) {
	op, err := pick(v, fractionOp)
	if err != nil {
		return calc.Result{}, err
	}
	for _, name := range []string{"n1", "d1", "n2", "d2"} {
		if math.Abs(v.Number(name)) > maxFractionTerm {
			return calc.Result{}, calc.Invalid(name, "Numbers are too large for the fraction calculator")
		}
		if !isWhole(v.Number(name)) {
			return calc.Result{}, calc.Invalid(name, "Numerators and denominators must be whole numbers")
		}
	}

	a := formula.Fraction{Num: int64(v.Number("n1")), Den: int64(v.Number("d1"))}
	b := formula.Fraction{Num: int64(v.Number("n2")), Den: int64(v.Number("d2"))}
	out, err := formula.Combine(a, op, b)
	switch {
	case errors.Is(err, formula.ErrZeroDenominator):
		return calc.Result{}, calc.Invalid("d1", "Denominator cannot be zero")
	case errors.Is(err, formula.ErrDivideByZero):
		return calc.Result{}, calc.Invalid("n2", "Cannot divide by zero")
	case errors.Is(err, formula.ErrOverflow):
		return calc.Result{}, calc.Invalid("n1", "The result is too large to show as a fraction")
	case err != nil:
		return calc.Result{}, calc.Invalid("op", err.Error())
	}

	return calc.Result{
		Primary: calc.Str("Result", out.String(), ""),
		Secondary: []calc.Value{
			calc.Num("Decimal", out.Float(), calc.Fixed(4), ""),
			calc.Str("Mixed number", out.Mixed(), ""),
		},
		Recommendations: []string{},
		Valid:           a.Num != 0 || b.Num != 0,
	}, nil
}

// Triangle solves a triangle from its three sides.
func Triangle() *calc.Definition {
	return &calc.Definition{
		Slug:        "triangle",
		Title:       "Triangle Calculator",
		Description: "Area, perimeter and angles of a triangle from three sides.",
		Fields: []calc.FieldSpec{
			number("a", "Side a", "", ""),
			number("b", "Side b", "", ""),
			number("c", "Side c", "", ""),
		},
		Compute: computeTriangle,
	}
}

func computeTriangle(v calc.Values) (calc.Result, error) {
	a, b, c := v.Number("a"), v.Number("b"), v.Number("c")

	var out formula.Triangle
	if a != 0 || b != 0 || c != 0 {
		var err error
		out, err = formula.SolveTriangle(a, b, c)
		if err != nil {
			return calc.Result{}, calc.Invalid("a", "These sides do not form a valid triangle: each side must be shorter than the other two combined")
		}
	}

	return calc.Result{
		Primary: calc.Num("Area", out.Area, calc.Grouped(2), "square units"),
		Secondary: []calc.Value{
			calc.Num("Perimeter", out.Perimeter, calc.Grouped(2), "units"),
			calc.Num("Angle A", out.AngleA, calc.Fixed(2), "°"),
			calc.Num("Angle B", out.AngleB, calc.Fixed(2), "°"),
			calc.Num("Angle C", out.AngleC, calc.Fixed(2), "°"),
			calc.Str("Type by sides", out.SideKind, ""),
			calc.Str("Type by angles", out.AngleKind, ""),
		},
		Recommendations: []string{},
		Valid:           out.Area > 0,
	}, nil
}

var romanDirection = choice("direction", "Convert", "to-roman", "to-roman", "to-arabic")

// Roman converts between Arabic numbers and Roman numerals.
func Roman() *calc.Definition {
	return &calc.Definition{
		Slug:        "roman",
		Title:       "Roman Numeral Converter",
		Description: "Convert numbers 1 to 3999 to Roman numerals and back.",
		Fields: []calc.FieldSpec{
			romanDirection,
			text("value", "Value", ""),
		},
		Compute: computeRoman,
	}
}

func computeRoman(v calc.Values) (calc.Result, error) {
	dir, err := pick(v, romanDirection)
	if err != nil {
		return calc.Result{}, err
	}
	raw := v.Text("value")

	if dir == "to-arabic" {
		if raw == "" {
			return calc.Result{Primary: calc.Num("Number", 0, calc.Fixed(0), ""), Secondary: []calc.Value{}, Recommendations: []string{}}, nil
		}
		n, err := formula.FromRoman(raw)
		if err != nil {
			return calc.Result{}, calc.Invalid("value", "Invalid Roman numeral")
		}
		return calc.Result{
			Primary:         calc.Num("Number", float64(n), calc.Fixed(0), ""),
			Secondary:       []calc.Value{},
			Recommendations: []string{},
			Valid:           true,
		}, nil
	}

	if raw == "" {
		return calc.Result{Primary: calc.Str("Roman numeral", "", ""), Secondary: []calc.Value{}, Recommendations: []string{}}, nil
	}
	n := calc.Coerce(raw)
	s, err := formula.ToRoman(int(n))
	if err != nil || !isWhole(n) {
		return calc.Result{}, calc.Invalid("value", fmt.Sprintf("Enter a whole number between %d and %d", formula.MinRoman, formula.MaxRoman))
	}
	return calc.Result{
		Primary:         calc.Str("Roman numeral", s, ""),
		Secondary:       []calc.Value{},
		Recommendations: []string{},
		Valid:           true,
	}, nil
}

var unitCategory = choice("category", "Category", formula.CategoryLength, formula.Categories()...)

// UnitConverter converts length, mass, volume and temperature.
func UnitConverter() *calc.Definition {
	return &calc.Definition{
		Slug:        "unit-converter",
		Title:       "Unit Converter",
		Description: "Convert between metric and imperial units of length, mass, volume and temperature.",
		Fields: []calc.FieldSpec{
			unitCategory,
			text("from", "From unit", "m"),
			text("to", "To unit", "ft"),
			number("value", "Value", "", ""),
		},
		Compute: computeUnits,
	}
}

func computeUnits(v calc.Values) (calc.Result, error) {
	cat, err := pick(v, unitCategory)
	if err != nil {
		return calc.Result{}, err
	}
	from, to := strings.ToLower(v.Text("from")), strings.ToLower(v.Text("to"))

	out, err := formula.Convert(cat, from, to, v.Number("value"))
	if err != nil {
		units, _ := formula.Units(cat)
		return calc.Result{}, calc.Invalid("from", fmt.Sprintf("Units for %s are %s", cat, strings.Join(units, ", ")))
	}
	return calc.Result{
		Primary:         calc.Num("Converted value", out, calc.Grouped(4), to),
		Secondary:       []calc.Value{calc.Num("Original value", v.Number("value"), calc.Grouped(4), from)},
		Recommendations: []string{},
		Valid:           v.Text("value") != "",
	}, nil
}

// Expression evaluates free-form arithmetic.
func Expression() *calc.Definition {
	return &calc.Definition{
		Slug:        "expression",
		Title:       "Basic Calculator",
		Description: "Evaluate an arithmetic expression with + - * / ** and parentheses.",
		Fields: []calc.FieldSpec{
			text("expression", "Expression", ""),
		},
		Compute: func(v calc.Values) (calc.Result, error) {
			out, err := formula.Evaluate(v.Text("expression"))
			switch {
			case errors.Is(err, formula.ErrNotFinite):
				return calc.Result{}, calc.Invalid("expression", "The result is not a finite number")
			case err != nil:
				return calc.Result{}, calc.Invalid("expression", "Invalid expression")
			}
			return calc.Result{
				Primary:         calc.Num("Result", out, plain, ""),
				Secondary:       []calc.Value{},
				Recommendations: []string{},
				Valid:           v.Text("expression") != "",
			}, nil
		},
	}
}

// plain prints up to ten decimals without trailing zeros.
func plain(f float64) string {
	return strconv.FormatFloat(calc.Round(f, 10), 'f', -1, 64)
}
