package formula

// Imperial to metric factors.
const (
	KgPerLb = 0.453592
	MPerFt  = 0.3048
	MPerIn  = 0.0254
)

// BMICategories are the adult BMI bands.
var BMICategories = Ladder[float64]{
	Bands: []Band[float64]{
		{Label: "Underweight", Note: "Your BMI is below the healthy range. Consider a nutrient-dense diet and talk to a healthcare provider.", Match: Below(18.5)},
		{Label: "Normal weight", Note: "Your BMI is in the healthy range. Keep up a balanced diet and regular activity.", Match: Below(25)},
		{Label: "Overweight", Note: "Your BMI is above the healthy range. Regular exercise and portion control can help.", Match: Below(30)},
		{Label: "Obese (Class I)", Note: "Consider a structured weight-management plan with a healthcare provider.", Match: Below(35)},
		{Label: "Obese (Class II)", Note: "Medical guidance is recommended to lower health risks.", Match: Below(40)},
	},
	Otherwise: Band[float64]{Label: "Obese (Class III)", Note: "Please consult a healthcare provider about a weight-management plan."},
}

// BMIResult is the output of BMI.
type BMIResult struct {
	BMI          float64
	Category     Band[float64]
	MinHealthyKg float64
	MaxHealthyKg float64
}

// BMI computes weightKg / heightM². Non-positive inputs give the zero result.
func BMI(weightKg, heightM float64) BMIResult {
	if weightKg <= 0 || heightM <= 0 {
		return BMIResult{}
	}
	m2 := heightM * heightM
	bmi := weightKg / m2
	return BMIResult{
		BMI:          bmi,
		Category:     BMICategories.Classify(bmi),
		MinHealthyKg: 18.5 * m2,
		MaxHealthyKg: 24.9 * m2,
	}
}

// ImperialHeight converts feet and inches to metres.
func ImperialHeight(feet, inches float64) float64 {
	return feet*MPerFt + inches*MPerIn
}

// PoundsToKg converts pounds to kilograms.
func PoundsToKg(lb float64) float64 {
	return lb * KgPerLb
}
