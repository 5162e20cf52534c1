package formula

import "math"

// SmartPoints scores a food from its calories, saturated fat, sugar and
// protein (grams). The score never drops below zero.
func SmartPoints(calories, satFat, sugar, protein float64) float64 {
	p := calories*0.0305 + satFat*0.275 + sugar*0.12 - protein*0.098
	if p <= 0 {
		return 0
	}
	return math.Round(p)
}
