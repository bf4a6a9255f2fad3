package main

import (
	"errors"

	"github.com/choam/aoc"
)

type claim struct {
	id   int
	at   aoc.Pt
	w, h int
}

// parseClaim parses "#123 @ 3,2: 5x4".
func parseClaim(line string) (claim, error) {
	p := aoc.NewParser(line)
	var nums [5]uint64
	seps := []string{"#", " @ ", ",", ": ", "x"}
	for i, sep := range seps {
		if err := p.ConsumeString(sep); err != nil {
			return claim{}, err
		}
		n, err := p.Uint()
		if err != nil {
			return claim{}, err
		}
		nums[i] = n
	}
	if !p.Done() {
		return claim{}, errors.New("trailing input after claim: " + p.Remaining())
	}
	return claim{
		id: int(nums[0]),
		at: aoc.Pt{X: int(nums[1]), Y: int(nums[2])},
		w:  int(nums[3]),
		h:  int(nums[4]),
	}, nil
}

func (c claim) forEach(f func(aoc.Pt)) {
	for y := c.at.Y; y < c.at.Y+c.h; y++ {
		for x := c.at.X; x < c.at.X+c.w; x++ {
			f(aoc.Pt{X: x, Y: y})
		}
	}
}

/*
want=4 3
#1 @ 1,3: 4x4
#2 @ 3,1: 4x4
#3 @ 5,5: 2x2
*/
func day3(input string) (any, any, error) {
	var claims []claim
	for _, line := range aoc.Lines(input) {
		c, err := parseClaim(line)
		if err != nil {
			return nil, nil, err
		}
		claims = append(claims, c)
	}

	fabric := map[aoc.Pt]int{}
	for _, c := range claims {
		c.forEach(func(p aoc.Pt) { fabric[p]++ })
	}
	overlap := 0
	for _, n := range fabric {
		if n > 1 {
			overlap++
		}
	}

	intact := 0
	for _, c := range claims {
		alone := true
		c.forEach(func(p aoc.Pt) {
			if fabric[p] > 1 {
				alone = false
			}
		})
		if alone {
			intact = c.id
			break
		}
	}
	return overlap, intact, nil
}
