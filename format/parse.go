package format

import (
	"errors"
	"strconv"
)

// ParseZoneID parses a base-10 int32 zone id. Surrounding whitespace is not trimmed.
func ParseZoneID(s string) (int32, bool) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}

	return int32(v), true
}

// ParseValue parses a decimal float32 cell value.
//
// Out-of-range magnitudes become ±Inf. Hexadecimal floats and digit
// separators are rejected.
func ParseValue(s string) (float32, bool) {
	if isHexOrSeparated(s) {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return float32(v), true
}

// isHexOrSeparated reports whether s uses number syntax that ParseFloat
// accepts beyond plain decimal notation.
func isHexOrSeparated(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return true
	}

	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			return true
		}
	}

	return false
}
