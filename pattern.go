package aoc

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
)

// Kind is the type a capture group is converted to.
type Kind int

const (
	Int   Kind = iota // int64
	Uint              // uint64
	Float             // float64
	Text              // string
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case Text:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var errNotCaptured = errors.New("group did not participate in the match")

// PatternCache compiles each distinct pattern once and keeps it for the
// life of the cache. It is safe for concurrent use.
type PatternCache struct {
	mu sync.Mutex
	m  map[string]*regexp.Regexp
}

// DefaultPatterns backs the package-level Match and Scan.
var DefaultPatterns = NewPatternCache()

func NewPatternCache() *PatternCache {
	return &PatternCache{m: map[string]*regexp.Regexp{}}
}

// Compile returns the compiled form of pattern, compiling it on first use.
func (c *PatternCache) Compile(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rx, ok := c.m[pattern]; ok {
		return rx, nil
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
	}
	c.m[pattern] = rx
	return rx, nil
}

// Len returns the number of compiled patterns held.
func (c *PatternCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// Match searches line for pattern, which must have exactly len(kinds)
// capture groups, and converts group i to kinds[i]. The result holds
// int64, uint64, float64 or string values in group order.
func (c *PatternCache) Match(pattern, line string, kinds ...Kind) ([]any, error) {
	groups, err := c.captures(pattern, line, len(kinds))
	if err != nil {
		return nil, err
	}
	out := make([]any, len(kinds))
	for i, k := range kinds {
		v, err := convert(groups[i], k)
		if err != nil {
			return nil, &CaptureError{Group: i + 1, Raw: groups[i].text, Kind: k, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

// Scan is like Match but stores the groups through dst, which must be
// pointers to int, int64, int32, uint, uint64, float64 or string. The
// pointer types decide the kinds.
func (c *PatternCache) Scan(pattern, line string, dst ...any) error {
	kinds := make([]Kind, len(dst))
	for i, d := range dst {
		k, ok := kindOf(d)
		if !ok {
			return fmt.Errorf("aoc: Scan destination %d has unsupported type %T", i, d)
		}
		kinds[i] = k
	}
	vals, err := c.Match(pattern, line, kinds...)
	if err != nil {
		return err
	}
	for i, d := range dst {
		if err := store(d, vals[i]); err != nil {
			return &CaptureError{Group: i + 1, Raw: fmt.Sprint(vals[i]), Kind: kinds[i], Err: err}
		}
	}
	return nil
}

// Match uses DefaultPatterns.
func Match(pattern, line string, kinds ...Kind) ([]any, error) {
	return DefaultPatterns.Match(pattern, line, kinds...)
}

// Scan uses DefaultPatterns.
func Scan(pattern, line string, dst ...any) error {
	return DefaultPatterns.Scan(pattern, line, dst...)
}

type group struct {
	text string
	ok   bool
}

func (c *PatternCache) captures(pattern, line string, want int) ([]group, error) {
	rx, err := c.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if n := rx.NumSubexp(); n != want {
		return nil, fmt.Errorf("%w: pattern %q has %d groups, %d kinds given", ErrGroupCount, pattern, n, want)
	}
	idx := rx.FindStringSubmatchIndex(line)
	if idx == nil {
		return nil, &PatternMismatchError{Pattern: pattern, Input: line}
	}
	groups := make([]group, want)
	for i := range groups {
		lo, hi := idx[2*(i+1)], idx[2*(i+1)+1]
		if lo >= 0 {
			groups[i] = group{text: line[lo:hi], ok: true}
		}
	}
	return groups, nil
}

func convert(g group, k Kind) (any, error) {
	if !g.ok {
		return nil, errNotCaptured
	}
	switch k {
	case Int:
		return strconv.ParseInt(g.text, 10, 64)
	case Uint:
		return strconv.ParseUint(g.text, 10, 64)
	case Float:
		return strconv.ParseFloat(g.text, 64)
	case Text:
		return g.text, nil
	}
	return nil, fmt.Errorf("unknown kind %v", k)
}

func kindOf(dst any) (Kind, bool) {
	switch dst.(type) {
	case *int, *int64, *int32:
		return Int, true
	case *uint, *uint64:
		return Uint, true
	case *float64:
		return Float, true
	case *string:
		return Text, true
	}
	return 0, false
}

func store(dst, v any) error {
	switch d := dst.(type) {
	case *int:
		*d = int(v.(int64))
	case *int64:
		*d = v.(int64)
	case *int32:
		n := v.(int64)
		if n != int64(int32(n)) {
			return ErrIntegerOverflow
		}
		*d = int32(n)
	case *uint:
		*d = uint(v.(uint64))
	case *uint64:
		*d = v.(uint64)
	case *float64:
		*d = v.(float64)
	case *string:
		*d = v.(string)
	}
	return nil
}
