package aoc

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Parser is a forward-only cursor over a single string. It never rewinds:
// every successful consuming call moves the cursor toward the end and
// failed calls leave it where the failure was detected.
//
// Typical use parses one puzzle line:
//
//	p := aoc.NewParser("#1 @ 1,3: 4x4")
//	p.Consume('#')
//	id, err := p.Uint()
type Parser struct {
	buf string
	pos int
}

func NewParser(s string) *Parser {
	return &Parser{buf: s}
}

// Pos returns the byte offset of the cursor.
func (p *Parser) Pos() int { return p.pos }

// Remaining returns the unconsumed input.
func (p *Parser) Remaining() string { return p.buf[p.pos:] }

// Done reports whether the whole input has been consumed.
func (p *Parser) Done() bool { return p.pos == len(p.buf) }

// Peek returns the next rune without consuming it.
func (p *Parser) Peek() (rune, bool) {
	if p.Done() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.buf[p.pos:])
	return r, true
}

// TryConsume consumes c if it is the next rune and reports whether it did.
func (p *Parser) TryConsume(c rune) bool {
	r, size := utf8.DecodeRuneInString(p.buf[p.pos:])
	if size == 0 || r != c {
		return false
	}
	p.pos += size
	return true
}

// Consume is like TryConsume but returns an *ExpectationError on mismatch.
func (p *Parser) Consume(c rune) error {
	if p.TryConsume(c) {
		return nil
	}
	r, ok := p.Peek()
	return &ExpectationError{Offset: p.pos, Expected: c, Found: r, EOF: !ok}
}

// ConsumeString consumes s one rune at a time. On mismatch the runes of s
// already matched stay consumed; use TryConsumeString for all-or-nothing.
func (p *Parser) ConsumeString(s string) error {
	for _, c := range s {
		if err := p.Consume(c); err != nil {
			return err
		}
	}
	return nil
}

// TryConsumeString consumes s only if the remaining input starts with it.
func (p *Parser) TryConsumeString(s string) bool {
	if !strings.HasPrefix(p.buf[p.pos:], s) {
		return false
	}
	p.pos += len(s)
	return true
}

// SkipSpaces consumes spaces and tabs and returns how many it consumed.
func (p *Parser) SkipSpaces() int {
	n := 0
	for p.TryConsume(' ') || p.TryConsume('\t') {
		n++
	}
	return n
}

// ReadUint reads the longest run of digits valid in base, most significant
// first. Values that do not fit in 64 bits wrap around.
func (p *Parser) ReadUint(base int) (uint64, error) {
	if base < 2 || base > 36 {
		return 0, &NumberError{Offset: p.pos, Base: base, Err: ErrInvalidBase}
	}
	start := p.pos
	var n uint64
	for p.pos < len(p.buf) {
		d, ok := digitVal(p.buf[p.pos])
		if !ok || d >= base {
			break
		}
		n = n*uint64(base) + uint64(d)
		p.pos++
	}
	if p.pos == start {
		return 0, &NumberError{Offset: start, Base: base, Err: ErrNoDigits}
	}
	return n, nil
}

// ReadInt reads an optional '-' followed by ReadUint(base). A magnitude
// that does not fit in an int64 is ErrIntegerOverflow.
func (p *Parser) ReadInt(base int) (int64, error) {
	start := p.pos
	neg := p.TryConsume('-')
	u, err := p.ReadUint(base)
	if err != nil {
		return 0, err
	}
	if u > math.MaxInt64 {
		return 0, &NumberError{Offset: start, Base: base, Err: ErrIntegerOverflow}
	}
	if neg {
		return -int64(u), nil
	}
	return int64(u), nil
}

// Uint is ReadUint(10).
func (p *Parser) Uint() (uint64, error) { return p.ReadUint(10) }

// Int is ReadInt(10).
func (p *Parser) Int() (int64, error) { return p.ReadInt(10) }

// ReadUntil consumes and returns everything before the next delim, or the
// rest of the input if delim does not occur. delim itself is left in place.
func (p *Parser) ReadUntil(delim rune) string {
	rest := p.buf[p.pos:]
	i := strings.IndexRune(rest, delim)
	if i < 0 {
		i = len(rest)
	}
	p.pos += i
	return rest[:i]
}

func digitVal(b byte) (int, bool) {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0'), true
	case 'a' <= b && b <= 'z':
		return int(b-'a') + 10, true
	case 'A' <= b && b <= 'Z':
		return int(b-'A') + 10, true
	}
	return 0, false
}
