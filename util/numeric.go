package util

import "strconv"

// Number holds the numeric interpretation of a token.
type Number struct {
	Int        int64
	Float      float64
	IsInt      bool
	IsFloat    bool
	IsNegative bool
}

// ParseNumeric reports whether s is parseable purely as a signed integer or
// decimal. Tokens such as "-42" or "-3.14" parse; "-v" or "-3x" do not.
func ParseNumeric(s string) (n Number, ok bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		n.Int = i
		n.IsInt = true
		n.IsNegative = i < 0
		ok = true
		return
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n.Float = f
		n.IsFloat = true
		n.IsNegative = f < 0
		ok = true
		return
	}

	return n, ok
}
