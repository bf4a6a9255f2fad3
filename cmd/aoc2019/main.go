// Command aoc2019 solves Advent of Code 2019 puzzles.
package main

import (
	"embed"

	"github.com/choam/aoc"
)

//go:embed *.go
var src embed.FS

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(day1)
	aoc.Main(2019)
}
