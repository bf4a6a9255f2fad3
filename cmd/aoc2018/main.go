// Command aoc2018 solves Advent of Code 2018 puzzles.
package main

import (
	"embed"

	"github.com/choam/aoc"
)

//go:embed *.go
var src embed.FS

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(day1, day2, day3, day5)
	aoc.Main(2018)
}
