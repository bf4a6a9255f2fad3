package main

import "github.com/choam/aoc"

/*
want=34241 51316
12
14
1969
100756
*/
func day1(input string) (any, any, error) {
	masses, err := aoc.Ints(input)
	if err != nil {
		return nil, nil, err
	}
	var simple, total int
	for _, m := range masses {
		simple += fuel(m)
		total += fuelForFuel(m)
	}
	return simple, total, nil
}

func fuel(mass int) int {
	return mass/3 - 2
}

// fuelForFuel also counts the fuel needed to carry the fuel itself.
func fuelForFuel(mass int) int {
	sum := 0
	for f := fuel(mass); f > 0; f = fuel(f) {
		sum += f
	}
	return sum
}
