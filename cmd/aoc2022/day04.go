package main

import "github.com/choam/aoc"

type span struct{ lo, hi int }

func (s span) contains(o span) bool { return s.lo <= o.lo && o.hi <= s.hi }
func (s span) overlaps(o span) bool { return s.lo <= o.hi && o.lo <= s.hi }

/*
want=2 4
2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
*/
func day4(input string) (any, any, error) {
	var nested, overlapping int
	for _, line := range aoc.Lines(input) {
		var a, b span
		if err := aoc.Scan(`^(\d+)-(\d+),(\d+)-(\d+)$`, line, &a.lo, &a.hi, &b.lo, &b.hi); err != nil {
			return nil, nil, err
		}
		if a.contains(b) || b.contains(a) {
			nested++
		}
		if a.overlaps(b) {
			overlapping++
		}
	}
	return nested, overlapping, nil
}
