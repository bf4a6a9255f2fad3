package main

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

/*
want=0 fgij
abcde
fghij
klmno
pqrst
fguij
axcye
wvxyz
*/
func day2(input string) (any, any, error) {
	ids := strings.Fields(input)
	var twos, threes int
	for _, id := range ids {
		counts := map[rune]int{}
		for _, r := range id {
			counts[r]++
		}
		n := maps.Values(counts)
		if slices.Contains(n, 2) {
			twos++
		}
		if slices.Contains(n, 3) {
			threes++
		}
	}
	common, err := nearMatch(ids)
	if err != nil {
		return nil, nil, err
	}
	return twos * threes, common, nil
}

// nearMatch finds the two ids differing in exactly one position and
// returns the letters they share.
func nearMatch(ids []string) (string, error) {
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if len(a) != len(b) {
				continue
			}
			var sb strings.Builder
			for k := 0; k < len(a); k++ {
				if a[k] == b[k] {
					sb.WriteByte(a[k])
				}
			}
			if sb.Len() == len(a)-1 {
				return sb.String(), nil
			}
		}
	}
	return "", errors.New("no ids differ by exactly one character")
}
