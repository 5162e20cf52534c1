package catalog

import (
	"errors"
	"fmt"
	"strings"

	"go-calculators/internal/calc"
	"go-calculators/internal/formula"
)

var percentageMode = choice("mode", "Calculation", "of", "of", "what-percent", "change")

// Percentage covers the three everyday percentage questions.
func Percentage() *calc.Definition {
	return &calc.Definition{
		Slug:        "percentage",
		Title:       "Percentage Calculator",
		Description: "X% of Y, X as a percentage of Y, and percentage change from X to Y.",
		Fields: []calc.FieldSpec{
			percentageMode,
			number("x", "X", "", ""),
			number("y", "Y", "", ""),
		},
		Compute: func(v calc.Values) (calc.Result, error) {
			mode, err := pick(v, percentageMode)
			if err != nil {
				return calc.Result{}, err
			}
			x, y := v.Number("x"), v.Number("y")

			switch mode {
			case "what-percent":
				return calc.Result{
					Primary:         calc.Num("Percentage", formula.WhatPercent(x, y), calc.Percent(2), ""),
					Secondary:       []calc.Value{},
					Recommendations: []string{},
					Valid:           y != 0,
				}, nil
			case "change":
				ch := formula.PercentChange(x, y)
				dir := "No change"
				if ch > 0 {
					dir = "Increase"
				} else if ch < 0 {
					dir = "Decrease"
				}
				return calc.Result{
					Primary:         calc.Num("Percentage change", ch, calc.Percent(2), ""),
					Secondary:       []calc.Value{calc.Str("Direction", dir, ""), calc.Num("Difference", y-x, calc.Grouped(2), "")},
					Recommendations: []string{},
					Valid:           x != 0,
				}, nil
			default:
				return calc.Result{
					Primary:         calc.Num("Result", formula.PercentOf(x, y), calc.Grouped(2), ""),
					Secondary:       []calc.Value{},
					Recommendations: []string{},
					Valid:           y != 0,
				}, nil
			}
		},
	}
}

// Discount applies a percentage discount and sales tax to a price.
func Discount() *calc.Definition {
	return &calc.Definition{
		Slug:        "discount",
		Title:       "Discount Calculator",
		Description: "Sale price after a percentage discount and optional sales tax.",
		Fields: []calc.FieldSpec{
			number("price", "Original price", "$", ""),
			number("discount", "Discount", "%", ""),
			number("tax", "Sales tax", "%", "0"),
		},
		Compute: func(v calc.Values) (calc.Result, error) {
			d := v.Number("discount")
			if d < 0 || d > 100 {
				return calc.Result{}, calc.Invalid("discount", "Discount must be between 0 and 100%")
			}
			if v.Number("tax") < 0 {
				return calc.Result{}, calc.Invalid("tax", "Sales tax cannot be negative")
			}
			out := formula.ApplyDiscount(v.Number("price"), d, v.Number("tax"))
			return calc.Result{
				Primary: calc.Num("Final price", out.Final, calc.Currency, ""),
				Secondary: []calc.Value{
					calc.Num("You save", out.Savings, calc.Currency, ""),
					calc.Num("Price after discount", out.Discounted, calc.Currency, ""),
					calc.Num("Sales tax", out.Tax, calc.Currency, ""),
				},
				Recommendations: []string{},
				Valid:           out.Final > 0,
			}, nil
		},
	}
}

// Tip splits a bill and tip between a party.
func Tip() *calc.Definition {
	return &calc.Definition{
		Slug:        "tip",
		Title:       "Tip Calculator",
		Description: "Tip amount, total, and each person's share of the bill.",
		Fields: []calc.FieldSpec{
			number("bill", "Bill amount", "$", ""),
			number("tip", "Tip", "%", "15"),
			number("people", "Number of people", "", "1"),
		},
		Compute: func(v calc.Values) (calc.Result, error) {
			if v.Number("bill") < 0 {
				return calc.Result{}, calc.Invalid("bill", "Bill amount cannot be negative")
			}
			if v.Number("tip") < 0 {
				return calc.Result{}, calc.Invalid("tip", "Tip percentage cannot be negative")
			}
			people := v.Number("people")
			if people < 1 {
				return calc.Result{}, calc.Invalid("people", "Number of people must be at least 1")
			}
			if !isWhole(people) {
				return calc.Result{}, calc.Invalid("people", "Number of people must be a whole number")
			}

			out := formula.SplitTip(v.Number("bill"), v.Number("tip"), int(people))
			return calc.Result{
				Primary: calc.Num("Total per person", out.PerPerson, calc.Currency, ""),
				Secondary: []calc.Value{
					calc.Num("Tip amount", out.TipAmount, calc.Currency, ""),
					calc.Num("Total amount", out.Total, calc.Currency, ""),
					calc.Num("Tip per person", out.TipPerPerson, calc.Currency, ""),
				},
				Recommendations: []string{},
				Valid:           out.Total > 0,
			}, nil
		},
	}
}

// GPA averages letter grades weighted by course credits. Courses are
// entered as "credits:grade" items, e.g. "3:A, 4:B+".
func GPA() *calc.Definition {
	return &calc.Definition{
		Slug:        "gpa",
		Title:       "GPA Calculator",
		Description: "Credit-weighted grade point average on a 4.0 scale.",
		Fields: []calc.FieldSpec{
			text("courses", "Courses (credits:grade)", ""),
		},
		Compute: computeGPA,
	}
}

func computeGPA(v calc.Values) (calc.Result, error) {
	courses, err := parseCourses(v.Text("courses"))
	if err != nil {
		return calc.Result{}, err
	}

	out, err := formula.ComputeGPA(courses)
	switch {
	case errors.Is(err, formula.ErrCreditsOutOfRange):
		return calc.Result{}, calc.Invalid("courses", fmt.Sprintf("Credits must be between %d and %d", formula.MinCourseCredits, formula.MaxCourseCredits))
	case errors.Is(err, formula.ErrUnknownGrade):
		return calc.Result{}, calc.Invalid("courses", "Grades must be A+ through F")
	case err != nil:
		return calc.Result{}, calc.Invalid("courses", err.Error())
	}

	standing := formula.GPAStanding.Classify(out.GPA)
	if out.Credits == 0 {
		standing = formula.Band[float64]{}
	}
	return calc.Result{
		Primary: calc.Num("GPA", out.GPA, calc.Fixed(2), ""),
		Secondary: []calc.Value{
			calc.Num("Total credits", out.Credits, calc.Fixed(0), ""),
			calc.Num("Quality points", out.QualityPoints, calc.Fixed(1), ""),
			calc.Str("Standing", standing.Label, ""),
		},
		Recommendations: notes(standing.Note),
		Valid:           out.Credits > 0,
	}, nil
}

func parseCourses(raw string) ([]formula.Course, error) {
	items := splitList(raw)
	courses := make([]formula.Course, 0, len(items))
	for _, item := range items {
		credits, grade, ok := strings.Cut(item, ":")
		if !ok {
			return nil, calc.Invalid("courses", "Enter each course as credits:grade, for example 3:A")
		}
		courses = append(courses, formula.Course{
			Credits: calc.Coerce(credits),
			Grade:   strings.TrimSpace(grade),
		})
	}
	return courses, nil
}

// GolfHandicap computes a handicap index from recent rounds entered as
// "score/rating/slope" items.
func GolfHandicap() *calc.Definition {
	return &calc.Definition{
		Slug:        "golf-handicap",
		Title:       "Golf Handicap Calculator",
		Description: "Handicap index from your most recent rounds.",
		Fields: []calc.FieldSpec{
			text("rounds", "Rounds (score/rating/slope)", ""),
		},
		Compute: computeHandicap,
	}
}

func computeHandicap(v calc.Values) (calc.Result, error) {
	items := splitList(v.Text("rounds"))
	rounds := make([]formula.Round, 0, len(items))
	for _, item := range items {
		parts := strings.Split(item, "/")
		if len(parts) != 3 {
			return calc.Result{}, calc.Invalid("rounds", "Enter each round as score/rating/slope, for example 90/72.1/125")
		}
		rounds = append(rounds, formula.Round{
			Score:  calc.Coerce(parts[0]),
			Rating: calc.Coerce(parts[1]),
			Slope:  calc.Coerce(parts[2]),
		})
	}

	var out formula.Handicap
	if len(rounds) > 0 {
		var err error
		out, err = formula.HandicapIndex(rounds)
		switch {
		case errors.Is(err, formula.ErrTooFewRounds):
			return calc.Result{}, calc.Invalid("rounds", fmt.Sprintf("At least %d rounds are required", formula.MinRounds))
		case errors.Is(err, formula.ErrInvalidSlope):
			return calc.Result{}, calc.Invalid("rounds", "Slope rating must be between 55 and 155")
		case err != nil:
			return calc.Result{}, calc.Invalid("rounds", err.Error())
		}
	}

	return calc.Result{
		Primary: calc.Num("Handicap index", out.Index, calc.Fixed(1), ""),
		Secondary: []calc.Value{
			calc.Num("Rounds counted", float64(out.Counted), calc.Fixed(0), ""),
			calc.Num("Differentials used", float64(out.Used), calc.Fixed(0), ""),
			calc.Num("Adjustment", out.Adjustment, calc.Fixed(1), ""),
		},
		Recommendations: []string{},
		Valid:           out.Counted > 0,
	}, nil
}
