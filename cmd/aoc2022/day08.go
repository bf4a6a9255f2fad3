package main

import "github.com/choam/aoc"

/*
want=21 8
30373
25512
65332
33549
35390
*/
func day8(input string) (any, any, error) {
	g := aoc.GridFromString(input)
	heights := make(map[aoc.Pt]int, len(g))
	for p, r := range g {
		h, err := aoc.DigVal(byte(r))
		if err != nil {
			return nil, nil, err
		}
		heights[p] = h
	}

	visible, best := 0, 0
	for p, h := range heights {
		seen := false
		score := 1
		for _, dir := range aoc.NorthClockwise {
			dist := 0
			edge := true
			for q := dir(p); ; q = dir(q) {
				qh, ok := heights[q]
				if !ok {
					break
				}
				dist++
				if qh >= h {
					edge = false
					break
				}
			}
			seen = seen || edge
			score *= dist
		}
		if seen {
			visible++
		}
		best = max(best, score)
	}
	return visible, best, nil
}
