package dtime

import (
	"strconv"

	"github.com/samber/lo"
)

// isDigits reports whether s consists only of ASCII digits. strconv alone is
// too lenient here: it accepts sign prefixes, which a packed field never carries.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitPairs cuts a run of ASCII digits into 2-digit base-10 values.
// Only called after isDigits: Atoi cannot fail on a pure digit pair.
func splitPairs(s string) []int {
	return lo.Map(
		lo.Chunk([]byte(s), 2),
		func(pair []byte, _ int) int {
			n, _ := strconv.Atoi(string(pair))
			return n
		},
	)
}
