package main

import (
	"strings"
	"unicode"
)

/*
want=10 4
dabAcCaCBAcCcaDA
*/
func day5(input string) (any, any, error) {
	polymer := strings.TrimSpace(input)
	best := len(polymer)
	for unit := 'a'; unit <= 'z'; unit++ {
		stripped := strings.Map(func(r rune) rune {
			if unicode.ToLower(r) == unit {
				return -1
			}
			return r
		}, polymer)
		best = min(best, len(react(stripped)))
	}
	return len(react(polymer)), best, nil
}

// react removes adjacent units of the same type and opposite polarity
// until none remain.
func react(polymer string) string {
	out := make([]rune, 0, len(polymer))
	for _, r := range polymer {
		if n := len(out); n > 0 && out[n-1] != r && unicode.ToLower(out[n-1]) == unicode.ToLower(r) {
			out = out[:n-1]
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
