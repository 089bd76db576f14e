package scholarly

import (
	"strconv"
	"strings"
)

// ParseNonNegativeIntOrZero converts text consisting solely of ASCII digits
// (surrounding whitespace ignored) to an int. Anything else, including
// values that overflow an int, yields 0.
func ParseNonNegativeIntOrZero(text string) int {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
