package calculator

import "go-calculators/internal/calc"

// ComputeRequest is the JSON body of compute and share requests. Inputs maps
// field names to raw form values; missing fields take their defaults.
type ComputeRequest struct {
	Inputs map[string]string `json:"inputs"`
}

// ComputeResponse is the JSON response of POST /calculators/{slug}.
type ComputeResponse struct {
	Slug    string                `json:"slug"`
	Result  calc.Result           `json:"result"`
	Summary calc.ShareableSummary `json:"summary"`
	Cached  bool                  `json:"cached"`
}

// CalculatorInfo is one catalog entry of GET /calculators.
type CalculatorInfo struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ListResponse is the JSON response of GET /calculators.
type ListResponse struct {
	Count       int              `json:"count"`
	Calculators []CalculatorInfo `json:"calculators"`
}
