package block

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const formSpace = " \t\n\r\v\f"

var (
	numericRe    = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	leadingIntRe = regexp.MustCompile(`^[+-]?\d+`)
)

// isNumeric accepts decimal integers and floats with optional sign, exponent and surrounding
// whitespace, the way form input numbers are checked by the admin UI
func isNumeric(s string) bool {
	return numericRe.MatchString(strings.Trim(s, formSpace))
}

// toInt converts form input to an integer. Numeric strings are truncated toward zero,
// other strings use their leading integer part and anything else is 0.
func toInt(s string) int {
	s = strings.TrimLeft(s, formSpace)
	if numericRe.MatchString(strings.TrimRight(s, formSpace)) {
		f, err := strconv.ParseFloat(strings.TrimRight(s, formSpace), 64)
		if err != nil || math.IsNaN(f) {
			return 0
		}
		switch {
		case f >= math.MaxInt32:
			return math.MaxInt32
		case f <= math.MinInt32:
			return math.MinInt32
		}
		return int(f)
	}
	prefix := leadingIntRe.FindString(s)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseInt(prefix, 10, 64)
	switch {
	case err != nil && strings.HasPrefix(prefix, "-"), v <= math.MinInt32:
		return math.MinInt32
	case err != nil, v >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(v)
}
