package tracker

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// AcceptKey reports whether a typed character may be inserted into a bounded
// number editor: digits and the decimal point are accepted, as are control
// characters (codes below 32) so that editing keys keep working.
func AcceptKey(r rune) bool {
	return r == '.' || r < ' ' || (r >= '0' && r <= '9')
}

// Normalize parses text as a number, clamps it to r and floors it, returning
// the result as an integer string. Text that is not a number normalizes to
// r.Min.
func Normalize(text string, r RangeInclusive) string {
	v := parseNumber(text)
	if math.IsNaN(v) {
		return strconv.Itoa(r.Min)
	}
	v = math.Max(float64(r.Min), math.Min(float64(r.Max), v))
	return strconv.Itoa(int(math.Floor(v)))
}

// FloorValue parses text as a number and floors it, without clamping to any
// bounds. ok is false if the text is not a number. Values beyond the 32-bit
// range saturate.
func FloorValue(text string) (value int, ok bool) {
	v := parseNumber(text)
	if math.IsNaN(v) {
		return 0, false
	}
	v = math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Floor(v)))
	return int(v), true
}

// parseNumber trims whitespace, treats empty text as zero and returns NaN for
// text that does not parse as a number.
func parseNumber(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v // ±Inf or 0
		}
		return math.NaN()
	}
	return v
}
