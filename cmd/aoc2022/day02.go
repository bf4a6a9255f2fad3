package main

import "github.com/choam/aoc"

type shape int

const (
	rock shape = iota
	paper
	scissors
)

func (s shape) score() int { return int(s) + 1 }

func (s shape) beats() shape  { return (s + 2) % 3 }
func (s shape) losesTo() shape { return (s + 1) % 3 }

// outcome returns 0, 3 or 6 for a loss, draw or win of me against them.
func outcome(me, them shape) int {
	switch them {
	case me:
		return 3
	case me.beats():
		return 6
	}
	return 0
}

const roundPattern = `^([ABC]) ([XYZ])$`

/*
want=15 12
A Y
B X
C Z
*/
func day2(input string) (any, any, error) {
	var asShape, asResult int
	for _, line := range aoc.Lines(input) {
		var col1, col2 string
		if err := aoc.Scan(roundPattern, line, &col1, &col2); err != nil {
			return nil, nil, err
		}
		them := shape(col1[0] - 'A')
		me := shape(col2[0] - 'X')
		asShape += me.score() + outcome(me, them)

		switch col2 {
		case "X":
			me = them.beats()
		case "Y":
			me = them
		case "Z":
			me = them.losesTo()
		}
		asResult += me.score() + outcome(me, them)
	}
	return asShape, asResult, nil
}
