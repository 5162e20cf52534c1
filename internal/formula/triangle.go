package formula

import (
	"errors"
	"math"
)

// ErrNotTriangle reports sides that violate the triangle inequality.
var ErrNotTriangle = errors.New("sides do not form a valid triangle")

const triangleEpsilon = 1e-9

// Triangle is the output of SolveTriangle. Angles are in degrees.
type Triangle struct {
	Area      float64
	Perimeter float64
	AngleA    float64
	AngleB    float64
	AngleC    float64
	SideKind  string
	AngleKind string
}

// TriangleAngles classifies a triangle by its largest angle.
var TriangleAngles = Ladder[float64]{
	Bands: []Band[float64]{
		{Label: "Right", Match: func(largest float64) bool { return math.Abs(largest-90) < 1e-6 }},
		{Label: "Obtuse", Match: func(largest float64) bool { return largest > 90 }},
	},
	Otherwise: Band[float64]{Label: "Acute"},
}

// SolveTriangle validates three sides, then applies Heron's formula for the
// area and the law of cosines for each angle.
func SolveTriangle(a, b, c float64) (Triangle, error) {
	if a <= 0 || b <= 0 || c <= 0 || a+b <= c || a+c <= b || b+c <= a {
		return Triangle{}, ErrNotTriangle
	}

	s := (a + b + c) / 2
	area := math.Sqrt(s * (s - a) * (s - b) * (s - c))

	t := Triangle{
		Area:      area,
		Perimeter: a + b + c,
		AngleA:    angle(b, c, a),
		AngleB:    angle(a, c, b),
		AngleC:    angle(a, b, c),
	}
	t.SideKind = sideKind(a, b, c)
	t.AngleKind = TriangleAngles.Classify(math.Max(t.AngleA, math.Max(t.AngleB, t.AngleC))).Label
	return t, nil
}

// angle returns the angle opposite side, in degrees, between adj1 and adj2.
func angle(adj1, adj2, opposite float64) float64 {
	cos := (adj1*adj1 + adj2*adj2 - opposite*opposite) / (2 * adj1 * adj2)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

func sideKind(a, b, c float64) string {
	eq := func(x, y float64) bool { return math.Abs(x-y) < triangleEpsilon }
	switch {
	case eq(a, b) && eq(b, c):
		return "Equilateral"
	case eq(a, b) || eq(b, c) || eq(a, c):
		return "Isosceles"
	default:
		return "Scalene"
	}
}
