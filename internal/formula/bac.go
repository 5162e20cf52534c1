package formula

// Widmark constants.
const (
	GramsPerDrink   = 14.0
	EliminationRate = 0.015 // BAC percentage points per hour
	MaleRatio       = 0.68
	FemaleRatio     = 0.55
)

// BACEffects are the typical effects per BAC level (percent).
var BACEffects = Ladder[float64]{
	Bands: []Band[float64]{
		{Label: "Sober", Note: "Little to no measurable effect.", Match: func(b float64) bool { return b == 0 }},
		{Label: "Minimal", Note: "Slight relaxation and mood change.", Match: Below(0.03)},
		{Label: "Mild impairment", Note: "Lowered alertness and reduced coordination.", Match: Below(0.06)},
		{Label: "Impaired", Note: "Judgment and reaction time are impaired. Do not drive.", Match: Below(0.08)},
		{Label: "Legally intoxicated", Note: "Above the legal driving limit in most of the US.", Match: Below(0.15)},
		{Label: "Severe impairment", Note: "Major loss of balance and control. Seek a safe place to rest.", Match: Below(0.30)},
	},
	Otherwise: Band[float64]{Label: "Life-threatening", Note: "Risk of alcohol poisoning. Seek medical help immediately."},
}

// BAC is the output of Widmark.
type BAC struct {
	Percent      float64
	Effect       Band[float64]
	HoursToSober float64
}

// Widmark estimates blood alcohol content in percent:
// BAC = grams / (body grams · r) · 100 − β · hours, floored at zero.
func Widmark(drinks, weightKg, hours float64, female bool) BAC {
	if weightKg <= 0 || drinks <= 0 {
		return BAC{Effect: BACEffects.Classify(0)}
	}
	r := MaleRatio
	if female {
		r = FemaleRatio
	}
	if hours < 0 {
		hours = 0
	}
	bac := drinks*GramsPerDrink/(weightKg*1000*r)*100 - EliminationRate*hours
	if bac < 0 {
		bac = 0
	}
	return BAC{
		Percent:      bac,
		Effect:       BACEffects.Classify(bac),
		HoursToSober: bac / EliminationRate,
	}
}
