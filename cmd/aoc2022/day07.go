package main

import (
	"fmt"
	"path"
	"slices"

	"github.com/choam/aoc"
	"golang.org/x/exp/maps"
)

const (
	diskSize   = 70_000_000
	updateSize = 30_000_000
)

// dirSizes replays a terminal session and returns the total size of every
// directory, keyed by absolute path.
func dirSizes(input string) (map[string]int, error) {
	sizes := map[string]int{"/": 0}
	cwd := "/"
	for _, line := range aoc.Lines(input) {
		p := aoc.NewParser(line)
		switch {
		case p.TryConsumeString("$ cd "):
			cwd = path.Join(cwd, p.Remaining())
			if _, ok := sizes[cwd]; !ok {
				sizes[cwd] = 0
			}
		case p.TryConsumeString("$ ls"), p.TryConsumeString("dir "):
		default:
			n, err := p.Uint()
			if err != nil {
				return nil, fmt.Errorf("line %q: %w", line, err)
			}
			if err := p.Consume(' '); err != nil {
				return nil, fmt.Errorf("line %q: %w", line, err)
			}
			for dir := cwd; ; dir = path.Dir(dir) {
				sizes[dir] += int(n)
				if dir == "/" {
					break
				}
			}
		}
	}
	return sizes, nil
}

/*
want=95437 24933642
$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
*/
func day7(input string) (any, any, error) {
	sizes, err := dirSizes(input)
	if err != nil {
		return nil, nil, err
	}
	small := 0
	for _, n := range sizes {
		if n <= 100_000 {
			small += n
		}
	}

	need := updateSize - (diskSize - sizes["/"])
	all := maps.Values(sizes)
	slices.Sort(all)
	i, _ := slices.BinarySearch(all, need)
	if i == len(all) {
		return nil, nil, fmt.Errorf("no directory frees %d", need)
	}
	return small, all[i], nil
}
