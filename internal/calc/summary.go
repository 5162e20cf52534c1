package calc

import "strings"

// Pair is one labelled input echoed in a summary.
type Pair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SummaryResult is the headline figure of a summary.
type SummaryResult struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// ShareableSummary is the read-only view handed to the sharing collaborator.
type ShareableSummary struct {
	Title  string        `json:"title"`
	Inputs []Pair        `json:"inputs"`
	Result SummaryResult `json:"result"`
}

// Summarize projects the inputs the result was computed from and its primary
// value. Inputs are listed in field order.
func Summarize(d *Definition, fields []InputField, r Result) ShareableSummary {
	raw := make(map[string]string, len(fields))
	for _, f := range fields {
		raw[f.Name] = f.RawValue
	}

	inputs := make([]Pair, 0, len(d.Fields))
	for _, spec := range d.Fields {
		v, ok := raw[spec.Name]
		if !ok {
			v = spec.Default
		}
		label := spec.Label
		if spec.Unit != "" {
			label += " (" + spec.Unit + ")"
		}
		inputs = append(inputs, Pair{Label: label, Value: strings.TrimSpace(v)})
	}

	return ShareableSummary{
		Title:  d.Title,
		Inputs: inputs,
		Result: SummaryResult{
			Label: r.Primary.Label,
			Value: r.Primary.Display,
			Unit:  r.Primary.Unit,
		},
	}
}

// SummarizeMap is Summarize for a name→raw map.
func SummarizeMap(d *Definition, raw map[string]string, r Result) ShareableSummary {
	fields := make([]InputField, 0, len(raw))
	for name, value := range raw {
		fields = append(fields, InputField{Name: name, RawValue: value})
	}
	return Summarize(d, fields, r)
}
