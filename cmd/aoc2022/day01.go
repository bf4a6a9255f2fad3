package main

import (
	"slices"
	"strings"

	"github.com/choam/aoc"
)

/*
want=24000 45000
1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func day1(input string) (any, any, error) {
	var totals []int
	for _, elf := range strings.Split(strings.TrimSpace(input), "\n\n") {
		foods, err := aoc.Ints(elf)
		if err != nil {
			return nil, nil, err
		}
		totals = append(totals, aoc.Sum(foods...))
	}
	slices.Sort(totals)
	slices.Reverse(totals)
	return totals[0], aoc.Sum(totals[:min(3, len(totals))]...), nil
}
