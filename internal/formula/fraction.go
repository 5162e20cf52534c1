package formula

import (
	"errors"
	"math/big"
	"strconv"
)

var (
	ErrZeroDenominator = errors.New("denominator cannot be zero")
	ErrDivideByZero    = errors.New("cannot divide by a zero fraction")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrOverflow        = errors.New("fraction too large")
)

// Fraction is a rational number n/d.
type Fraction struct {
	Num int64
	Den int64
}

// GCD is Euclid's greatest common divisor of |a| and |b|.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Reduce divides out the GCD and keeps the sign on the numerator.
func (f Fraction) Reduce() Fraction {
	if f.Num == 0 {
		return Fraction{Num: 0, Den: 1}
	}
	if f.Den < 0 {
		f.Num, f.Den = -f.Num, -f.Den
	}
	g := GCD(f.Num, f.Den)
	return Fraction{Num: f.Num / g, Den: f.Den / g}
}

// Float returns the decimal value.
func (f Fraction) Float() float64 {
	return float64(f.Num) / float64(f.Den)
}

func (f Fraction) String() string {
	if f.Den == 1 {
		return strconv.FormatInt(f.Num, 10)
	}
	return strconv.FormatInt(f.Num, 10) + "/" + strconv.FormatInt(f.Den, 10)
}

// Mixed renders an improper fraction as a mixed number, e.g. 7/2 → "3 1/2".
func (f Fraction) Mixed() string {
	r := f.Reduce()
	if r.Den == 0 {
		return r.String()
	}
	whole := r.Num / r.Den
	rem := r.Num % r.Den
	if whole == 0 || rem == 0 {
		return r.String()
	}
	if rem < 0 {
		rem = -rem
	}
	return strconv.FormatInt(whole, 10) + " " + Fraction{Num: rem, Den: r.Den}.String()
}

func (f Fraction) check() error {
	if f.Den == 0 {
		return ErrZeroDenominator
	}
	return nil
}

// Combine applies op (+ - * /) to a and b and returns the reduced result.
// Intermediate products are exact; a result whose reduced terms do not fit
// in int64 is ErrOverflow.
func Combine(a Fraction, op string, b Fraction) (Fraction, error) {
	if err := a.check(); err != nil {
		return Fraction{}, err
	}
	if err := b.check(); err != nil {
		return Fraction{}, err
	}

	x, y := big.NewRat(a.Num, a.Den), big.NewRat(b.Num, b.Den)
	out := new(big.Rat)
	switch op {
	case "+":
		out.Add(x, y)
	case "-":
		out.Sub(x, y)
	case "*":
		out.Mul(x, y)
	case "/":
		if b.Num == 0 {
			return Fraction{}, ErrDivideByZero
		}
		out.Quo(x, y)
	default:
		return Fraction{}, ErrUnknownOperator
	}

	num, den := out.Num(), out.Denom()
	if !num.IsInt64() || !den.IsInt64() {
		return Fraction{}, ErrOverflow
	}
	return Fraction{Num: num.Int64(), Den: den.Int64()}, nil
}
