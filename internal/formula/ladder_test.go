package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLadderFirstMatchWins(t *testing.T) {
	l := Ladder[float64]{
		Bands: []Band[float64]{
			{Label: "low", Match: Below(10)},
			{Label: "also-low", Match: Below(20)},
		},
		Otherwise: Band[float64]{Label: "high"},
	}

	assert.Equal(t, "low", l.Classify(5).Label)
	assert.Equal(t, "also-low", l.Classify(10).Label)
	assert.Equal(t, "high", l.Classify(20).Label)
	assert.Equal(t, []string{"low", "also-low", "high"}, l.Labels())
}

func TestBMICategoryBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{bmi: 10, want: "Underweight"},
		{bmi: 18.49, want: "Underweight"},
		{bmi: 18.5, want: "Normal weight"},
		{bmi: 24.99, want: "Normal weight"},
		{bmi: 25, want: "Overweight"},
		{bmi: 30, want: "Obese (Class I)"},
		{bmi: 35, want: "Obese (Class II)"},
		{bmi: 39.99, want: "Obese (Class II)"},
		{bmi: 40, want: "Obese (Class III)"},
		{bmi: 80, want: "Obese (Class III)"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, BMICategories.Classify(tc.bmi).Label, "bmi %v", tc.bmi)
	}
}
