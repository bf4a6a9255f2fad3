package main

import (
	"fmt"
	"strings"
)

// marker returns the number of characters read when the last n were all
// different.
func marker(signal string, n int) (int, error) {
	for end := n; end <= len(signal); end++ {
		var seen [256]bool
		dup := false
		for i := end - n; i < end; i++ {
			if seen[signal[i]] {
				dup = true
				break
			}
			seen[signal[i]] = true
		}
		if !dup {
			return end, nil
		}
	}
	return 0, fmt.Errorf("no run of %d distinct characters", n)
}

/*
want=7 19
mjqjpqmgbljsphdztnvjfqwrcgsmlb
*/
func day6(input string) (any, any, error) {
	signal := strings.TrimSpace(input)
	p1, err := marker(signal, 4)
	if err != nil {
		return nil, nil, err
	}
	p2, err := marker(signal, 14)
	if err != nil {
		return nil, nil, err
	}
	return p1, p2, nil
}
