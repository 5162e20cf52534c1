package formula

import "math"

// SimpleInterest returns the interest P·r·t and the total repaid.
func SimpleInterest(principal, annualPercent, years float64) (interest, total float64) {
	if principal <= 0 || years <= 0 {
		return 0, 0
	}
	interest = principal * annualPercent / 100 * years
	return interest, principal + interest
}

// Growth is the outcome of a compounding schedule.
type Growth struct {
	FutureValue   float64
	Contributions float64
	Interest      float64
}

// annuityFactor is ((1+i)^n − 1)/i, with the i → 0 limit n.
func annuityFactor(i, n float64) float64 {
	if i == 0 {
		return n
	}
	return (math.Pow(1+i, n) - 1) / i
}

// CompoundInterest grows a lump sum, A = P(1+r/k)^(k·t), plus a contribution
// made at the end of every compounding period.
func CompoundInterest(principal, annualPercent float64, perYear int, years, contribution float64) Growth {
	if perYear <= 0 || years <= 0 || (principal <= 0 && contribution <= 0) {
		return Growth{}
	}
	i := annualPercent / 100 / float64(perYear)
	n := float64(perYear) * years

	lump := principal * math.Pow(1+i, n)
	annuity := contribution * annuityFactor(i, n)
	fv := lump + annuity
	paid := principal + contribution*n
	return Growth{FutureValue: fv, Contributions: paid, Interest: fv - paid}
}

// SIP is the future value of a monthly systematic investment,
// FV = PMT·((1+i)^n − 1)/i with i the monthly rate and n the months.
func SIP(monthly, annualPercent, years float64) Growth {
	if monthly <= 0 || years <= 0 {
		return Growth{}
	}
	i := annualPercent / 100 / 12
	n := years * 12
	fv := monthly * annuityFactor(i, n)
	paid := monthly * n
	return Growth{FutureValue: fv, Contributions: paid, Interest: fv - paid}
}
