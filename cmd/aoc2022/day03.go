package main

import (
	"fmt"
	"strings"

	"github.com/choam/aoc"
)

func priority(item byte) (int, error) {
	switch {
	case 'a' <= item && item <= 'z':
		return int(item-'a') + 1, nil
	case 'A' <= item && item <= 'Z':
		return int(item-'A') + 27, nil
	}
	return 0, fmt.Errorf("bad item %q", item)
}

// common returns the first byte of first present in every one of rest.
func common(first string, rest ...string) (byte, error) {
	for i := 0; i < len(first); i++ {
		found := true
		for _, r := range rest {
			if strings.IndexByte(r, first[i]) < 0 {
				found = false
				break
			}
		}
		if found {
			return first[i], nil
		}
	}
	return 0, fmt.Errorf("no common item in %q", first)
}

/*
want=157 70
vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func day3(input string) (any, any, error) {
	sacks := aoc.Lines(input)
	if len(sacks)%3 != 0 {
		return nil, nil, fmt.Errorf("%d rucksacks is not a whole number of groups", len(sacks))
	}
	var p1, p2 int
	for _, s := range sacks {
		item, err := common(s[:len(s)/2], s[len(s)/2:])
		if err != nil {
			return nil, nil, err
		}
		pr, err := priority(item)
		if err != nil {
			return nil, nil, err
		}
		p1 += pr
	}
	for i := 0; i < len(sacks); i += 3 {
		badge, err := common(sacks[i], sacks[i+1], sacks[i+2])
		if err != nil {
			return nil, nil, err
		}
		pr, err := priority(badge)
		if err != nil {
			return nil, nil, err
		}
		p2 += pr
	}
	return p1, p2, nil
}
