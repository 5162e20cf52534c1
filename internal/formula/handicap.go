package formula

import (
	"errors"
	"math"
	"sort"
)

// Handicap constants.
const (
	StandardSlope = 113.0
	MinRounds     = 3
	MaxRounds     = 20
	MaxHandicap   = 54.0
)

var (
	ErrTooFewRounds = errors.New("at least 3 rounds are required")
	ErrInvalidSlope = errors.New("slope rating must be between 55 and 155")
)

// Round is one scored round.
type Round struct {
	Score  float64
	Rating float64
	Slope  float64
}

// Differential is (113 / slope) · (score − rating).
func (r Round) Differential() float64 {
	return StandardSlope / r.Slope * (r.Score - r.Rating)
}

// handicapTier says how many of the lowest differentials count for a given
// number of rounds, and the adjustment applied to their average.
type handicapTier struct {
	maxRounds int
	used      int
	adjust    float64
}

// handicapTiers are scanned in order; the last tier catches 20 rounds.
var handicapTiers = []handicapTier{
	{maxRounds: 3, used: 1, adjust: -2.0},
	{maxRounds: 4, used: 1, adjust: -1.0},
	{maxRounds: 5, used: 1},
	{maxRounds: 6, used: 2, adjust: -1.0},
	{maxRounds: 8, used: 2},
	{maxRounds: 11, used: 3},
	{maxRounds: 14, used: 4},
	{maxRounds: 16, used: 5},
	{maxRounds: 18, used: 6},
	{maxRounds: 19, used: 7},
	{maxRounds: MaxRounds, used: 8},
}

func tierFor(n int) handicapTier {
	for _, t := range handicapTiers {
		if n <= t.maxRounds {
			return t
		}
	}
	return handicapTiers[len(handicapTiers)-1]
}

// Handicap is the output of HandicapIndex.
type Handicap struct {
	Index         float64
	Used          int
	Counted       int
	Adjustment    float64
	Differentials []float64
}

// HandicapIndex averages the lowest differentials of the most recent 20
// rounds (the tail of rounds) according to the score-count tier, rounds to a
// tenth and caps at 54.
func HandicapIndex(rounds []Round) (Handicap, error) {
	if len(rounds) < MinRounds {
		return Handicap{}, ErrTooFewRounds
	}
	if len(rounds) > MaxRounds {
		rounds = rounds[len(rounds)-MaxRounds:]
	}

	diffs := make([]float64, len(rounds))
	for i, r := range rounds {
		if r.Slope < 55 || r.Slope > 155 {
			return Handicap{}, ErrInvalidSlope
		}
		diffs[i] = r.Differential()
	}

	sorted := append([]float64(nil), diffs...)
	sort.Float64s(sorted)

	tier := tierFor(len(diffs))
	var sum float64
	for _, d := range sorted[:tier.used] {
		sum += d
	}
	idx := math.Round((sum/float64(tier.used)+tier.adjust)*10) / 10
	idx = math.Min(idx, MaxHandicap)

	return Handicap{
		Index:         idx,
		Used:          tier.used,
		Counted:       len(diffs),
		Adjustment:    tier.adjust,
		Differentials: diffs,
	}, nil
}
