package formula

import (
	"errors"
	"strings"
)

// Bounds of representable Roman numerals.
const (
	MinRoman = 1
	MaxRoman = 3999
)

var (
	ErrRomanRange   = errors.New("number must be between 1 and 3999")
	ErrRomanInvalid = errors.New("invalid Roman numeral")
)

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

var romanValues = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// Pairs that never appear in a well-formed numeral.
var romanForbidden = []string{"VX", "LC", "DM", "VV", "LL", "DD"}

// ToRoman encodes n greedily, largest symbol first.
func ToRoman(n int) (string, error) {
	if n < MinRoman || n > MaxRoman {
		return "", ErrRomanRange
	}
	var sb strings.Builder
	for _, e := range romanTable {
		for n >= e.value {
			sb.WriteString(e.symbol)
			n -= e.value
		}
	}
	return sb.String(), nil
}

// FromRoman decodes s, reading subtractive pairs with a one-symbol
// lookahead. Runs of four identical symbols and forbidden pairs are rejected.
func FromRoman(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrRomanInvalid
	}
	for i := 0; i < len(s); i++ {
		if _, ok := romanValues[s[i]]; !ok {
			return 0, ErrRomanInvalid
		}
		if i >= 3 && s[i] == s[i-1] && s[i] == s[i-2] && s[i] == s[i-3] {
			return 0, ErrRomanInvalid
		}
	}
	for _, p := range romanForbidden {
		if strings.Contains(s, p) {
			return 0, ErrRomanInvalid
		}
	}

	total := 0
	for i := 0; i < len(s); {
		cur := romanValues[s[i]]
		if i+1 < len(s) {
			if next := romanValues[s[i+1]]; cur < next {
				total += next - cur
				i += 2
				continue
			}
		}
		total += cur
		i++
	}
	if total > MaxRoman {
		return 0, ErrRomanRange
	}
	// only the canonical spelling is accepted, so IIX, IC and MCMC fail
	if canon, err := ToRoman(total); err != nil || canon != s {
		return 0, ErrRomanInvalid
	}
	return total, nil
}
