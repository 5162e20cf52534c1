package formula

import "math"

// MonthlyRate converts an annual percentage into a monthly fraction.
func MonthlyRate(annualPercent float64) float64 {
	return annualPercent / 100 / 12
}

// Payment is the fixed monthly payment of an amortizing loan,
// M = P·r(1+r)^n / ((1+r)^n − 1). A zero rate falls back to straight-line
// repayment P/n.
func Payment(principal, annualPercent float64, months int) float64 {
	if principal <= 0 || months <= 0 {
		return 0
	}
	r := MonthlyRate(annualPercent)
	n := float64(months)
	if r == 0 {
		return principal / n
	}
	f := math.Pow(1+r, n)
	return principal * r * f / (f - 1)
}

// YearSummary aggregates one year of an amortization schedule.
type YearSummary struct {
	Year      int
	Principal float64
	Interest  float64
	Balance   float64
}

// Loan is the output of Amortize.
type Loan struct {
	Payment       float64
	TotalPaid     float64
	TotalInterest float64
	Schedule      []YearSummary
}

// Amortize computes the payment and a yearly schedule for a loan.
func Amortize(principal, annualPercent float64, months int) Loan {
	pmt := Payment(principal, annualPercent, months)
	if pmt == 0 {
		return Loan{Schedule: []YearSummary{}}
	}

	r := MonthlyRate(annualPercent)
	balance := principal
	schedule := make([]YearSummary, 0, (months+11)/12)
	var year YearSummary
	for m := 1; m <= months; m++ {
		interest := balance * r
		princ := pmt - interest
		if m == months || princ > balance {
			princ = balance
		}
		balance -= princ
		year.Principal += princ
		year.Interest += interest
		if m%12 == 0 || m == months {
			year.Year = (m + 11) / 12
			year.Balance = math.Max(balance, 0)
			schedule = append(schedule, year)
			year = YearSummary{}
		}
	}

	total := pmt * float64(months)
	return Loan{
		Payment:       pmt,
		TotalPaid:     total,
		TotalInterest: total - principal,
		Schedule:      schedule,
	}
}

// Mortgage is the output of MortgagePayment.
type Mortgage struct {
	LoanAmount        float64
	PrincipalInterest float64
	MonthlyTax        float64
	MonthlyInsurance  float64
	MonthlyTotal      float64
	TotalInterest     float64
	TotalCost         float64
}

// MortgagePayment finances price minus down payment and adds escrowed tax
// and insurance to the monthly figure.
func MortgagePayment(price, down, annualPercent float64, months int, annualTax, annualInsurance float64) Mortgage {
	loanAmount := price - down
	if loanAmount <= 0 || months <= 0 {
		return Mortgage{}
	}

	pi := Payment(loanAmount, annualPercent, months)
	tax := annualTax / 12
	ins := annualInsurance / 12
	totalPI := pi * float64(months)
	return Mortgage{
		LoanAmount:        loanAmount,
		PrincipalInterest: pi,
		MonthlyTax:        tax,
		MonthlyInsurance:  ins,
		MonthlyTotal:      pi + tax + ins,
		TotalInterest:     totalPI - loanAmount,
		TotalCost:         totalPI + down + (tax+ins)*float64(months),
	}
}
