package main

import (
	"testing"

	"github.com/choam/aoc"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	r := aoc.NewRegistry()
	r.Add(day1)
	require.NoError(t, r.ExtractSamples(src))
	checked, err := r.CheckSample("day1")
	require.NoError(t, err)
	require.True(t, checked)
}

func TestFuel(t *testing.T) {
	for mass, want := range map[int]int{12: 2, 14: 2, 1969: 654, 100756: 33583} {
		require.Equal(t, want, fuel(mass))
	}
	require.Equal(t, 966, fuelForFuel(1969))
	require.Equal(t, 0, fuelForFuel(2))
}

func TestDay1BadInput(t *testing.T) {
	_, _, err := day1("12\nfourteen\n")
	require.ErrorIs(t, err, aoc.ErrNoDigits)
}
