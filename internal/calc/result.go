package calc

import (
	"errors"
	"math"
)

// Value is one labelled, display-ready quantity of a result.
type Value struct {
	Label   string  `json:"label"`
	Display string  `json:"display"`
	Number  float64 `json:"number"`
	Unit    string  `json:"unit,omitempty"`
}

// Result is the projection of a formula run. It is immutable once returned.
type Result struct {
	Primary         Value    `json:"primary"`
	Secondary       []Value  `json:"secondary"`
	Recommendations []string `json:"recommendations"`
	Valid           bool     `json:"valid"`
}

// Num builds a numeric Value. Non-finite numbers are stored as 0 and shown
// as NotAvailable so results always encode.
func Num(label string, n float64, display func(float64) string, unit string) Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Value{Label: label, Display: NotAvailable, Unit: unit}
	}
	return Value{Label: label, Display: display(n), Number: n, Unit: unit}
}

// Str builds a Value whose primary content is text (a Roman numeral, a
// category label).
func Str(label, s, unit string) Value {
	return Value{Label: label, Display: s, Unit: unit}
}

// Lookup finds a value of the result by label.
func (r Result) Lookup(label string) (Value, bool) {
	if r.Primary.Label == label {
		return r.Primary, true
	}
	for _, v := range r.Secondary {
		if v.Label == label {
			return v, true
		}
	}
	return Value{}, false
}

// ValidationError is a domain-invalid input rejected before the formula runs.
// Message is shown to the user verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid returns a ValidationError for field.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// AsValidation reports whether err carries a ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
