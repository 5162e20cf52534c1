package formula

// Tip is the output of SplitTip.
type Tip struct {
	TipAmount    float64
	Total        float64
	PerPerson    float64
	TipPerPerson float64
}

// SplitTip adds tipPct to bill and splits the total between people. Fewer
// than one person leaves the per-person figures at zero.
func SplitTip(bill, tipPct float64, people int) Tip {
	if bill <= 0 {
		return Tip{}
	}
	tip := PercentOf(tipPct, bill)
	t := Tip{TipAmount: tip, Total: bill + tip}
	if people >= 1 {
		t.PerPerson = t.Total / float64(people)
		t.TipPerPerson = tip / float64(people)
	}
	return t
}
