package catalog

import (
	"go-calculators/internal/calc"
	"go-calculators/internal/formula"
)

var bmiUnit = choice("unit", "Unit system", "metric", "metric", "imperial")

// BMI is the body mass index calculator.
func BMI() *calc.Definition {
	return &calc.Definition{
		Slug:        "bmi",
		Title:       "BMI Calculator",
		Description: "Body mass index from weight and height, with the adult weight category.",
		Fields: []calc.FieldSpec{
			bmiUnit,
			number("weight", "Weight", "kg / lb", ""),
			number("height_cm", "Height", "cm", ""),
			number("height_ft", "Height", "ft", ""),
			number("height_in", "Height", "in", ""),
		},
		Compute: computeBMI,
	}
}

func computeBMI(v calc.Values) (calc.Result, error) {
	unit, err := pick(v, bmiUnit)
	if err != nil {
		return calc.Result{}, err
	}

	imperial := unit == "imperial"
	kg, m, wUnit := v.Number("weight"), v.Number("height_cm")/100, "kg"
	if imperial {
		kg = formula.PoundsToKg(v.Number("weight"))
		m = formula.ImperialHeight(v.Number("height_ft"), v.Number("height_in"))
		wUnit = "lb"
	}

	out := formula.BMI(kg, m)
	lo, hi := out.MinHealthyKg, out.MaxHealthyKg
	if imperial {
		lo, hi = lo/formula.KgPerLb, hi/formula.KgPerLb
	}

	return calc.Result{
		Primary: calc.Num("BMI", out.BMI, calc.Fixed(1), "kg/m²"),
		Secondary: []calc.Value{
			calc.Str("Category", out.Category.Label, ""),
			calc.Num("Healthy weight from", lo, calc.Fixed(1), wUnit),
			calc.Num("Healthy weight to", hi, calc.Fixed(1), wUnit),
		},
		Recommendations: notes(out.Category.Note),
		Valid:           out.BMI > 0,
	}, nil
}

var (
	bacSex        = choice("sex", "Sex", "male", "male", "female")
	bacWeightUnit = choice("weight_unit", "Weight unit", "kg", "kg", "lb")
)

// BAC estimates blood alcohol content with the Widmark formula.
func BAC() *calc.Definition {
	return &calc.Definition{
		Slug:        "bac",
		Title:       "BAC Calculator",
		Description: "Estimated blood alcohol content after a number of standard drinks.",
		Fields: []calc.FieldSpec{
			bacSex,
			number("weight", "Body weight", "", ""),
			bacWeightUnit,
			number("drinks", "Standard drinks", "", ""),
			number("hours", "Hours since first drink", "h", "0"),
		},
		Compute: computeBAC,
	}
}

func computeBAC(v calc.Values) (calc.Result, error) {
	sex, err := pick(v, bacSex)
	if err != nil {
		return calc.Result{}, err
	}
	unit, err := pick(v, bacWeightUnit)
	if err != nil {
		return calc.Result{}, err
	}
	if v.Number("drinks") < 0 || v.Number("hours") < 0 {
		return calc.Result{}, calc.Invalid("drinks", "Drinks and hours cannot be negative")
	}

	kg := v.Number("weight")
	if unit == "lb" {
		kg = formula.PoundsToKg(kg)
	}
	out := formula.Widmark(v.Number("drinks"), kg, v.Number("hours"), sex == "female")

	recs := notes(out.Effect.Note)
	if out.Percent > 0 {
		recs = append(recs, "This is an estimate only. Never drink and drive.")
	}
	return calc.Result{
		Primary: calc.Num("Blood alcohol content", out.Percent, calc.Percent(3), ""),
		Secondary: []calc.Value{
			calc.Str("Effect", out.Effect.Label, ""),
			calc.Num("Time until sober", out.HoursToSober, calc.Fixed(1), "h"),
		},
		Recommendations: recs,
		Valid:           kg > 0 && v.Number("drinks") > 0,
	}, nil
}

// SmartPoints scores a food item.
func SmartPoints() *calc.Definition {
	return &calc.Definition{
		Slug:        "smartpoints",
		Title:       "SmartPoints Calculator",
		Description: "Food score from calories, saturated fat, sugar and protein.",
		Fields: []calc.FieldSpec{
			number("calories", "Calories", "kcal", ""),
			number("saturated_fat", "Saturated fat", "g", ""),
			number("sugar", "Sugar", "g", ""),
			number("protein", "Protein", "g", ""),
		},
		Compute: func(v calc.Values) (calc.Result, error) {
			cal := v.Number("calories")
			if cal < 0 || v.Number("saturated_fat") < 0 || v.Number("sugar") < 0 || v.Number("protein") < 0 {
				return calc.Result{}, calc.Invalid("calories", "Nutrition values cannot be negative")
			}
			p := formula.SmartPoints(cal, v.Number("saturated_fat"), v.Number("sugar"), v.Number("protein"))
			return calc.Result{
				Primary:         calc.Num("SmartPoints", p, calc.Fixed(0), ""),
				Secondary:       []calc.Value{},
				Recommendations: []string{},
				Valid:           cal > 0,
			}, nil
		},
	}
}

// BodyType classifies body shape from three measurements.
func BodyType() *calc.Definition {
	return &calc.Definition{
		Slug:        "body-type",
		Title:       "Body Type Calculator",
		Description: "Body shape from shoulder, waist and hip measurements.",
		Fields: []calc.FieldSpec{
			number("shoulders", "Shoulders", "cm", ""),
			number("waist", "Waist", "cm", ""),
			number("hips", "Hips", "cm", ""),
		},
		Compute: func(v calc.Values) (calc.Result, error) {
			out := formula.ClassifyBody(formula.Measurements{
				Shoulders: v.Number("shoulders"),
				Waist:     v.Number("waist"),
				Hips:      v.Number("hips"),
			})
			return calc.Result{
				Primary: calc.Str("Body shape", out.Shape.Label, ""),
				Secondary: []calc.Value{
					calc.Num("Shoulder-to-hip ratio", out.ShoulderHip, calc.Fixed(2), ""),
					calc.Num("Waist-to-hip ratio", out.WaistHip, calc.Fixed(2), ""),
				},
				Recommendations: notes(out.Shape.Note),
				Valid:           out.Shape.Label != "",
			}, nil
		},
	}
}
