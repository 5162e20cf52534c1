package formula

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"
)

var (
	ErrExpression = errors.New("invalid expression")
	ErrNotFinite  = errors.New("result is not a finite number")
)

// Evaluate computes an arithmetic expression such as "(2 + 3) * 4 / 5".
// Variables are not supported. An empty expression evaluates to 0.
func Evaluate(expr string) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, nil
	}

	e, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExpression, err)
	}
	if vars := e.Vars(); len(vars) > 0 {
		return 0, fmt.Errorf("%w: unknown name %q", ErrExpression, vars[0])
	}

	out, err := e.Evaluate(nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExpression, err)
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: result is not a number", ErrExpression)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}
