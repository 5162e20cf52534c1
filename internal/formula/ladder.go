package formula

// Band is one rung of a classification ladder.
type Band[T any] struct {
	Label string
	Note  string
	Match func(T) bool
}

// Ladder classifies a value by evaluating bands in order; the first match
// wins and Otherwise catches everything the bands leave over, so Classify is
// total.
type Ladder[T any] struct {
	Bands     []Band[T]
	Otherwise Band[T]
}

// Classify returns the first band matching v, or Otherwise.
func (l Ladder[T]) Classify(v T) Band[T] {
	for _, b := range l.Bands {
		if b.Match(v) {
			return b
		}
	}
	return l.Otherwise
}

// Labels lists the band labels in evaluation order, Otherwise last.
func (l Ladder[T]) Labels() []string {
	out := make([]string, 0, len(l.Bands)+1)
	for _, b := range l.Bands {
		out = append(out, b.Label)
	}
	return append(out, l.Otherwise.Label)
}

// Below matches values strictly less than limit.
func Below(limit float64) func(float64) bool {
	return func(v float64) bool { return v < limit }
}
