package calc

import (
	"math"
	"strconv"
	"strings"
)

// FieldKind tells coercion and the shells how to treat a raw value.
type FieldKind string

const (
	KindNumber FieldKind = "number"
	KindChoice FieldKind = "choice"
	KindText   FieldKind = "text"
)

// FieldSpec describes one input of a calculator form.
type FieldSpec struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Unit    string    `json:"unit,omitempty"`
	Default string    `json:"default,omitempty"`
	Options []string  `json:"options,omitempty"`
}

// InputField is the mutable raw state behind a form input.
type InputField struct {
	Name     string
	RawValue string
	Unit     string
}

// Coerce parses raw as a decimal number. Empty, partial or non-numeric input
// yields 0, as do the NaN and Inf spellings strconv would otherwise accept.
func Coerce(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Values is the validated snapshot of a form taken at calculate time.
// Number fields are coerced once; choice and text fields keep their
// trimmed raw value.
type Values struct {
	numbers map[string]float64
	text    map[string]string
}

// Snapshot coerces fields against specs. Fields without a spec are ignored,
// specs without a field fall back to their default.
func Snapshot(specs []FieldSpec, fields []InputField) Values {
	raw := make(map[string]string, len(fields))
	for _, f := range fields {
		raw[f.Name] = f.RawValue
	}

	v := Values{
		numbers: make(map[string]float64, len(specs)),
		text:    make(map[string]string, len(specs)),
	}
	for _, s := range specs {
		r, ok := raw[s.Name]
		if !ok {
			r = s.Default
		}
		r = strings.TrimSpace(r)
		v.text[s.Name] = r
		if s.Kind == KindNumber || s.Kind == "" {
			v.numbers[s.Name] = Coerce(r)
		}
	}
	return v
}

// SnapshotMap is Snapshot for a name→raw map, the shape used by transports.
func SnapshotMap(specs []FieldSpec, raw map[string]string) Values {
	fields := make([]InputField, 0, len(raw))
	for name, value := range raw {
		fields = append(fields, InputField{Name: name, RawValue: value})
	}
	return Snapshot(specs, fields)
}

// Number returns the coerced value of a number field, 0 when absent.
func (v Values) Number(name string) float64 {
	return v.numbers[name]
}

// Int truncates Number towards zero.
func (v Values) Int(name string) int {
	return int(v.numbers[name])
}

// Text returns the trimmed raw value of any field.
func (v Values) Text(name string) string {
	return v.text[name]
}

// Choice returns the lower-cased raw value of a choice field.
func (v Values) Choice(name string) string {
	return strings.ToLower(v.text[name])
}
