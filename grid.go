package aoc

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt = Pt2[int]

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

func (p Pt2[T]) North() Pt2[T] { return Pt2[T]{p.X, p.Y - 1} }
func (p Pt2[T]) South() Pt2[T] { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) West() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y} }
func (p Pt2[T]) East() Pt2[T]  { return Pt2[T]{p.X + 1, p.Y} }

func sliceOf[T any](v ...T) []T { return v }

var NorthClockwise = sliceOf(
	Pt2[int].North,
	Pt2[int].East,
	Pt2[int].South,
	Pt2[int].West,
)

func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Grid is a sparse map of runes. Whitespace is never stored.
type Grid map[Pt]rune

func GridFromString(s string) Grid {
	g := Grid{}
	for y, line := range strings.Split(s, "\n") {
		for x, r := range line {
			if unicode.IsSpace(r) {
				continue
			}
			g[Pt{x, y}] = r
		}
	}
	return g
}

// Line sets every point on the straight or diagonal segment a..b to v.
func (g Grid) Line(a, b Pt, v rune) {
	for p := a; ; p = p.Toward(b) {
		g[p] = v
		if p == b {
			return
		}
	}
}

func (g Grid) Count(v rune) int {
	n := 0
	for _, r := range g {
		if r == v {
			n++
		}
	}
	return n
}

func (g Grid) Bounds() (minX, minY, maxX, maxY int) {
	n := 0
	for p := range g {
		if n == 0 {
			minX = p.X
			maxX = p.X
			minY = p.Y
			maxY = p.Y
		}
		n++
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return
}

// Draw writes g to w, one row per line, with '.' for unset points.
func (g Grid) Draw(w io.Writer) {
	minX, minY, maxX, maxY := g.Bounds()
	for y := minY; y <= maxY; y++ {
		var sb strings.Builder
		for x := minX; x <= maxX; x++ {
			r, ok := g[Pt{x, y}]
			if !ok {
				r = '.'
			}
			sb.WriteRune(r)
		}
		fmt.Fprintln(w, sb.String())
	}
}
