package catalog

import (
	"math"

	"go-calculators/internal/calc"
	"go-calculators/internal/formula"
)

func negativeRate(v calc.Values) error {
	if v.Number("rate") < 0 {
		return calc.Invalid("rate", "Interest rate cannot be negative")
	}
	return nil
}

func months(years float64) int {
	return int(math.Round(years * 12))
}

// Loan is the amortizing loan payment calculator.
func Loan() *calc.Definition {
	return &calc.Definition{
		Slug:        "loan",
		Title:       "Loan Calculator",
		Description: "Monthly payment and total interest of a fixed-rate loan.",
		Fields: []calc.FieldSpec{
			number("amount", "Loan amount", "$", ""),
			number("rate", "Annual interest rate", "%", ""),
			number("years", "Loan term", "years", ""),
		},
		Compute: computeLoan,
	}
}

func computeLoan(v calc.Values) (calc.Result, error) {
	if err := negativeRate(v); err != nil {
		return calc.Result{}, err
	}

	n := months(v.Number("years"))
	out := formula.Amortize(v.Number("amount"), v.Number("rate"), n)

	var first formula.YearSummary
	if len(out.Schedule) > 0 {
		first = out.Schedule[0]
	}

	var recs []string
	if out.Payment > 0 && out.TotalInterest > v.Number("amount")/2 {
		recs = append(recs, "Interest adds more than half of the amount borrowed. A shorter term or extra payments lower the total cost.")
	}
	return calc.Result{
		Primary: calc.Num("Monthly payment", out.Payment, calc.Currency, ""),
		Secondary: []calc.Value{
			calc.Num("Total payment", out.TotalPaid, calc.Currency, ""),
			calc.Num("Total interest", out.TotalInterest, calc.Currency, ""),
			calc.Num("Number of payments", float64(nonZero(out.Payment, n)), calc.Fixed(0), ""),
			calc.Num("Principal paid in year 1", first.Principal, calc.Currency, ""),
			calc.Num("Interest paid in year 1", first.Interest, calc.Currency, ""),
		},
		Recommendations: notes(recs...),
		Valid:           out.Payment > 0,
	}, nil
}

func nonZero(payment float64, n int) int {
	if payment == 0 {
		return 0
	}
	return n
}

// Mortgage adds escrowed property tax and insurance to a home loan.
func Mortgage() *calc.Definition {
	return &calc.Definition{
		Slug:        "mortgage",
		Title:       "Mortgage Calculator",
		Description: "Monthly housing payment including property tax and insurance.",
		Fields: []calc.FieldSpec{
			number("price", "Home price", "$", ""),
			number("down_payment", "Down payment", "$", "0"),
			number("rate", "Annual interest rate", "%", ""),
			number("years", "Loan term", "years", "30"),
			number("property_tax", "Annual property tax", "$", "0"),
			number("insurance", "Annual home insurance", "$", "0"),
		},
		Compute: computeMortgage,
	}
}

func computeMortgage(v calc.Values) (calc.Result, error) {
	if err := negativeRate(v); err != nil {
		return calc.Result{}, err
	}
	price, down := v.Number("price"), v.Number("down_payment")
	if down < 0 {
		return calc.Result{}, calc.Invalid("down_payment", "Down payment cannot be negative")
	}
	if price > 0 && down > price {
		return calc.Result{}, calc.Invalid("down_payment", "Down payment cannot exceed the home price")
	}

	out := formula.MortgagePayment(price, down, v.Number("rate"), months(v.Number("years")), v.Number("property_tax"), v.Number("insurance"))

	var recs []string
	if out.LoanAmount > 0 && down < price*0.2 {
		recs = append(recs, "A down payment below 20% usually requires private mortgage insurance.")
	}
	return calc.Result{
		Primary: calc.Num("Monthly payment", out.MonthlyTotal, calc.Currency, ""),
		Secondary: []calc.Value{
			calc.Num("Loan amount", out.LoanAmount, calc.Currency, ""),
			calc.Num("Principal & interest", out.PrincipalInterest, calc.Currency, ""),
			calc.Num("Property tax", out.MonthlyTax, calc.Currency, "per month"),
			calc.Num("Home insurance", out.MonthlyInsurance, calc.Currency, "per month"),
			calc.Num("Total interest", out.TotalInterest, calc.Currency, ""),
			calc.Num("Total cost", out.TotalCost, calc.Currency, ""),
		},
		Recommendations: notes(recs...),
		Valid:           out.MonthlyTotal > 0,
	}, nil
}

// SimpleInterest is the simple interest calculator.
func SimpleInterest() *calc.Definition {
	return &calc.Definition{
		Slug:        "simple-interest",
		Title:       "Simple Interest Calculator",
		Description: "Interest earned on a principal at a flat annual rate.",
		Fields: []calc.FieldSpec{
			number("principal", "Principal", "$", ""),
			number("rate", "Annual interest rate", "%", ""),
			number("years", "Time", "years", ""),
		},
		Compute: func(v calc.Values) (calc.Result, error) {
			if err := negativeRate(v); err != nil {
				return calc.Result{}, err
			}
			interest, total := formula.SimpleInterest(v.Number("principal"), v.Number("rate"), v.Number("years"))
			return calc.Result{
				Primary:         calc.Num("Total amount", total, calc.Currency, ""),
				Secondary:       []calc.Value{calc.Num("Interest", interest, calc.Currency, "")},
				Recommendations: []string{},
				Valid:           total > 0,
			}, nil
		},
	}
}

var compoundFrequency = choice("frequency", "Compounding", "monthly", "annually", "semiannually", "quarterly", "monthly", "daily")

var periodsPerYear = map[string]int{
	"annually":     1,
	"semiannually": 2,
	"quarterly":    4,
	"monthly":      12,
	"daily":        365,
}

// CompoundInterest grows a principal with optional periodic contributions.
func CompoundInterest() *calc.Definition {
	return &calc.Definition{
		Slug:        "compound-interest",
		Title:       "Compound Interest Calculator",
		Description: "Future value of a deposit with compounding and regular contributions.",
		Fields: []calc.FieldSpec{
			number("principal", "Initial deposit", "$", ""),
			number("rate", "Annual interest rate", "%", ""),
			compoundFrequency,
			number("years", "Time", "years", ""),
			number("contribution", "Contribution per period", "$", "0"),
		},
		Compute: func(v calc.Values) (calc.Result, error) {
			if err := negativeRate(v); err != nil {
				return calc.Result{}, err
			}
			freq, err := pick(v, compoundFrequency)
			if err != nil {
				return calc.Result{}, err
			}
			out := formula.CompoundInterest(v.Number("principal"), v.Number("rate"), periodsPerYear[freq], v.Number("years"), v.Number("contribution"))
			return growthResult(out), nil
		},
	}
}

// SIP is the systematic investment plan calculator.
func SIP() *calc.Definition {
	return &calc.Definition{
		Slug:        "sip",
		Title:       "SIP Calculator",
		Description: "Future value of a fixed monthly investment.",
		Fields: []calc.FieldSpec{
			number("monthly", "Monthly investment", "$", ""),
			number("rate", "Expected annual return", "%", ""),
			number("years", "Time period", "years", ""),
		},
		Compute: func(v calc.Values) (calc.Result, error) {
			if err := negativeRate(v); err != nil {
				return calc.Result{}, err
			}
			return growthResult(formula.SIP(v.Number("monthly"), v.Number("rate"), v.Number("years"))), nil
		},
	}
}

func growthResult(g formula.Growth) calc.Result {
	return calc.Result{
		Primary: calc.Num("Future value", g.FutureValue, calc.Currency, ""),
		Secondary: []calc.Value{
			calc.Num("Total invested", g.Contributions, calc.Currency, ""),
			calc.Num("Interest earned", g.Interest, calc.Currency, ""),
		},
		Recommendations: []string{},
		Valid:           g.FutureValue > 0,
	}
}
