package formula

import (
	"errors"
	"fmt"
	"strings"
)

// Credit bounds for a single course.
const (
	MinCourseCredits = 1
	MaxCourseCredits = 6
)

var (
	ErrCreditsOutOfRange = errors.New("credits out of range")
	ErrUnknownGrade      = errors.New("unknown grade")
)

// GradePoints maps letter grades to the 4.0 scale.
var GradePoints = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "D-": 0.7,
	"F": 0.0,
}

// Course is one graded course.
type Course struct {
	Credits float64
	Grade   string
}

// GPA is the output of ComputeGPA.
type GPA struct {
	GPA           float64
	Credits       float64
	QualityPoints float64
}

// GPAStanding describes a GPA in words.
var GPAStanding = Ladder[float64]{
	Bands: []Band[float64]{
		{Label: "Excellent", Note: "Dean's list territory. Keep it up.", Match: func(g float64) bool { return g >= 3.5 }},
		{Label: "Good", Note: "Solid standing. A few stronger grades will lift you further.", Match: func(g float64) bool { return g >= 3.0 }},
		{Label: "Satisfactory", Note: "Focus on the courses with the most credits to move your GPA.", Match: func(g float64) bool { return g >= 2.0 }},
	},
	Otherwise: Band[float64]{Label: "At risk", Note: "Talk to an academic advisor about a plan to raise your GPA."},
}

// ComputeGPA returns the credit-weighted grade point average. Every course is
// validated before any arithmetic runs; an empty list gives the zero result.
func ComputeGPA(courses []Course) (GPA, error) {
	for i, c := range courses {
		if c.Credits < MinCourseCredits || c.Credits > MaxCourseCredits {
			return GPA{}, fmt.Errorf("course %d: %w", i+1, ErrCreditsOutOfRange)
		}
		if _, ok := GradePoints[strings.ToUpper(c.Grade)]; !ok {
			return GPA{}, fmt.Errorf("course %d: %w %q", i+1, ErrUnknownGrade, c.Grade)
		}
	}

	var g GPA
	for _, c := range courses {
		g.Credits += c.Credits
		g.QualityPoints += GradePoints[strings.ToUpper(c.Grade)] * c.Credits
	}
	if g.Credits == 0 {
		return GPA{}, nil
	}
	g.GPA = g.QualityPoints / g.Credits
	return g, nil
}
