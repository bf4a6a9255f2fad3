// Command aoc2022 solves Advent of Code 2022 puzzles.
package main

import (
	"embed"

	"github.com/choam/aoc"
)

//go:embed *.go
var src embed.FS

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(day1, day2, day3, day4, day6, day7, day8, day14)
	aoc.Main(2022)
}
