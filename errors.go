package aoc

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidExpectation = errors.New("invalid expectation")
	ErrNoDigits           = errors.New("no digits found")
	ErrIntegerOverflow    = errors.New("integer overflow")
	ErrInvalidBase        = errors.New("invalid numeric base")
	ErrPatternMismatch    = errors.New("pattern did not match")
	ErrCaptureConversion  = errors.New("capture conversion failed")
	ErrBadPattern         = errors.New("bad pattern")
	ErrGroupCount         = errors.New("capture group count mismatch")
	ErrNoSession          = errors.New("no AoC session token configured")
)

// ExpectationError reports that the parser wanted Expected at Offset but
// found something else, or nothing at all when EOF is set.
type ExpectationError struct {
	Offset   int
	Expected rune
	Found    rune
	EOF      bool
}

func (e *ExpectationError) Error() string {
	if e.EOF {
		return fmt.Sprintf("offset %d: expected %q, found end of input", e.Offset, e.Expected)
	}
	return fmt.Sprintf("offset %d: expected %q, found %q", e.Offset, e.Expected, e.Found)
}

func (e *ExpectationError) Is(target error) bool { return target == ErrInvalidExpectation }

// NumberError is returned by the numeric readers. Err is one of
// ErrNoDigits, ErrIntegerOverflow or ErrInvalidBase.
type NumberError struct {
	Offset int
	Base   int
	Err    error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("offset %d: base %d: %v", e.Offset, e.Base, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }

type PatternMismatchError struct {
	Pattern string
	Input   string
}

func (e *PatternMismatchError) Error() string {
	return fmt.Sprintf("pattern %q did not match %q", e.Pattern, e.Input)
}

func (e *PatternMismatchError) Is(target error) bool { return target == ErrPatternMismatch }

// CaptureError reports a capture group whose text could not be converted.
// Group is 1-based, like regexp submatch indexes.
type CaptureError struct {
	Group int
	Raw   string
	Kind  Kind
	Err   error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("group %d: cannot convert %q to %v: %v", e.Group, e.Raw, e.Kind, e.Err)
}

func (e *CaptureError) Is(target error) bool { return target == ErrCaptureConversion }

func (e *CaptureError) Unwrap() error { return e.Err }
