package extract

import "strings"

// RemoveFalsePositives returns symbols minus every entry that contains any
// rule as a substring. Matching is deliberately broad: a rule suppresses a
// whole prefix/suffix/infix family, not one exact name. Input order is
// preserved and the input slice is left untouched.
func RemoveFalsePositives(symbols []string, rules []string) []string {
	if len(rules) == 0 {
		return symbols
	}

	kept := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if !matchesAny(s, rules) {
			kept = append(kept, s)
		}
	}
	return kept
}

func matchesAny(symbol string, rules []string) bool {
	for _, r := range rules {
		if strings.Contains(symbol, r) {
			return true
		}
	}
	return false
}
