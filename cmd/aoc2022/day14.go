package main

import (
	"github.com/choam/aoc"
	"golang.org/x/exp/maps"
)

var sandSource = aoc.Pt{X: 500, Y: 0}

// parseRock draws every "x,y -> x,y -> ..." path in input as '#'.
func parseRock(input string) (aoc.Grid, error) {
	g := aoc.Grid{}
	for _, line := range aoc.Lines(input) {
		p := aoc.NewParser(line)
		var prev *aoc.Pt
		for {
			x, err := p.Int()
			if err != nil {
				return nil, err
			}
			if err := p.Consume(','); err != nil {
				return nil, err
			}
			y, err := p.Int()
			if err != nil {
				return nil, err
			}
			pt := aoc.Pt{X: int(x), Y: int(y)}
			if prev == nil {
				g[pt] = '#'
			} else {
				g.Line(*prev, pt, '#')
			}
			prev = &pt
			if p.Done() {
				break
			}
			if err := p.ConsumeString(" -> "); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// pour drops sand until a grain falls past abyss, or the source is
// blocked. With floor set, y == abyss+2 is solid and sand never escapes.
func pour(g aoc.Grid, abyss int, floor bool) int {
	grains := 0
	for {
		if _, ok := g[sandSource]; ok {
			return grains
		}
		p := sandSource
		for {
			if !floor && p.Y > abyss {
				return grains
			}
			moved := false
			for _, next := range []aoc.Pt{p.South(), p.South().West(), p.South().East()} {
				if _, blocked := g[next]; blocked || (floor && next.Y == abyss+2) {
					continue
				}
				p = next
				moved = true
				break
			}
			if !moved {
				break
			}
		}
		g[p] = 'o'
		grains++
	}
}

/*
want=24 93
498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
*/
func day14(input string) (any, any, error) {
	g, err := parseRock(input)
	if err != nil {
		return nil, nil, err
	}
	_, _, _, maxY := g.Bounds()
	withFloor := maps.Clone(g)
	return pour(g, maxY, false), pour(withFloor, maxY, true), nil
}
