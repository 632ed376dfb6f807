package strutil

import (
	"strconv"
	"strings"
)

// IsFloat reports whether s holds a floating point number. Surrounding
// whitespace and comma thousands separators are allowed.
func IsFloat(s string) bool {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsNumeric reports whether s holds a base 10 integer that fits in an int64.
func IsNumeric(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}

// IsAlphanumeric reports whether s is non-empty and consists only of ASCII
// letters and digits.
func IsAlphanumeric(s string) bool {
	return alphanumericRe.MatchString(s)
}

// WordCount returns the number of whitespace separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
