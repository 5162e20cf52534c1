package formula

import "math"

// Measurements are body circumferences in a common unit.
type Measurements struct {
	Shoulders float64
	Waist     float64
	Hips      float64
}

func (m Measurements) shoulderHip() float64 { return m.Shoulders / m.Hips }
func (m Measurements) waistHip() float64 { return m.Waist / m.Hips }

// BodyShapes is evaluated top to bottom; Rectangle catches the rest.
var BodyShapes = Ladder[Measurements]{
	Bands: []Band[Measurements]{
		{
			Label: "Hourglass",
			Note:  "Shoulders and hips are balanced with a well-defined waist.",
			Match: func(m Measurements) bool { return math.Abs(m.shoulderHip()-1) <= 0.05 && m.waistHip() <= 0.75 },
		},
		{
			Label: "Apple",
			Note:  "Weight tends to sit around the midsection.",
			Match: func(m Measurements) bool { return m.waistHip() >= 0.9 },
		},
		{
			Label: "Inverted Triangle",
			Note:  "Shoulders are broader than hips.",
			Match: func(m Measurements) bool { return m.shoulderHip() > 1.05 },
		},
		{
			Label: "Pear",
			Note:  "Hips are wider than shoulders.",
			Match: func(m Measurements) bool { return m.shoulderHip() < 0.95 },
		},
	},
	Otherwise: Band[Measurements]{Label: "Rectangle", Note: "Shoulders, waist and hips are similar in width."},
}

// BodyType is the output of ClassifyBody.
type BodyType struct {
	Shape       Band[Measurements]
	ShoulderHip float64
	WaistHip    float64
}

// ClassifyBody derives the shoulder/hip and waist/hip ratios and the body
// shape. Any non-positive measurement gives the zero result.
func ClassifyBody(m Measurements) BodyType {
	if m.Shoulders <= 0 || m.Waist <= 0 || m.Hips <= 0 {
		return BodyType{}
	}
	return BodyType{
		Shape:       BodyShapes.Classify(m),
		ShoulderHip: m.shoulderHip(),
		WaistHip:    m.waistHip(),
	}
}
