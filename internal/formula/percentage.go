package formula

import "math"

// PercentOf returns pct percent of base.
func PercentOf(pct, base float64) float64 {
	return pct / 100 * base
}

// WhatPercent returns part as a percentage of whole; 0 when whole is 0.
func WhatPercent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// PercentChange returns the relative change from → to in percent; 0 when
// from is 0.
func PercentChange(from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return (to - from) / math.Abs(from) * 100
}

// Discount is the output of ApplyDiscount.
type Discount struct {
	Savings    float64
	Discounted float64
	Tax        float64
	Final      float64
}

// ApplyDiscount takes discountPct off price and adds taxPct sales tax on the
// discounted amount.
func ApplyDiscount(price, discountPct, taxPct float64) Discount {
	if price <= 0 {
		return Discount{}
	}
	savings := PercentOf(discountPct, price)
	discounted := price - savings
	tax := PercentOf(taxPct, discounted)
	return Discount{
		Savings:    savings,
		Discounted: discounted,
		Tax:        tax,
		Final:      discounted + tax,
	}
}
