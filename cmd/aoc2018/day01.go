package main

import "github.com/choam/aoc"

/*
want=3 2
+1
-2
+3
+1
*/
func day1(input string) (any, any, error) {
	changes, err := aoc.Ints(input)
	if err != nil {
		return nil, nil, err
	}
	return aoc.Sum(changes...), firstRepeat(changes), nil
}

// firstRepeat cycles through changes until a running frequency is seen
// twice. It assumes a repeat exists, as every puzzle input does.
func firstRepeat(changes []int) int {
	seen := map[int]bool{0: true}
	freq := 0
	for {
		for _, c := range changes {
			freq += c
			if seen[freq] {
				return freq
			}
			seen[freq] = true
		}
	}
}
