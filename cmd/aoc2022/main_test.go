package main

import (
	"bytes"
	"testing"

	"github.com/choam/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	r := aoc.NewRegistry()
	r.Add(day1, day2, day3, day4, day6, day7, day8, day14)
	require.NoError(t, r.ExtractSamples(src))
	for _, name := range []string{"day1", "day2", "day3", "day4", "day6", "day7", "day8", "day14"} {
		t.Run(name, func(t *testing.T) {
			checked, err := r.CheckSample(name)
			require.NoError(t, err)
			assert.True(t, checked, "no sample")
		})
	}
}

func TestDay2RejectsBadRound(t *testing.T) {
	_, _, err := day2("A Y\nB W\n")
	require.ErrorIs(t, err, aoc.ErrPatternMismatch)
}

func TestDay4RejectsBadPair(t *testing.T) {
	_, _, err := day4("2-4,6-8\n2-4;6-8\n")
	require.ErrorIs(t, err, aoc.ErrPatternMismatch)
}

func TestMarker(t *testing.T) {
	tests := []struct {
		in     string
		p1, p2 int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tt := range tests {
		p1, p2, err := day6(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.p1, p1, tt.in)
		assert.Equal(t, tt.p2, p2, tt.in)
	}
	_, err := marker("aaaa", 4)
	require.Error(t, err)
}

func TestDirSizes(t *testing.T) {
	sizes, err := dirSizes("$ cd /\n$ ls\n10 a\n$ cd x\n$ ls\n5 b\n$ cd ..\n$ cd y\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"/": 15, "/x": 5, "/y": 0}, sizes)

	_, err = dirSizes("$ cd /\nbogus line\n")
	require.ErrorIs(t, err, aoc.ErrNoDigits)
}

func TestParseRock(t *testing.T) {
	g, err := parseRock("498,4 -> 498,6 -> 496,6\n503,4 -> 502,4 -> 502,9 -> 494,9")
	require.NoError(t, err)
	var buf bytes.Buffer
	g.Draw(&buf)
	assert.Equal(t, ""+
		"....#...##\n"+
		"....#...#.\n"+
		"..###...#.\n"+
		"........#.\n"+
		"........#.\n"+
		"#########.\n", buf.String())

	_, err = parseRock("498,4 -> 498")
	require.ErrorIs(t, err, aoc.ErrInvalidExpectation)
}
