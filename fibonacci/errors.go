package fibonacci

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNotInteger is returned when an index is not an integer.
	ErrNotInteger = errors.New("k must be an integer")

	// ErrNegativeIndex is returned when an index is negative.
	ErrNegativeIndex = errors.New("k must be greater than or equal to zero")

	// ErrOverflow is returned when a value does not fit the requested integer type.
	ErrOverflow = errors.New("fibonacci number out of range")
)

// Kind classifies generator errors.
type Kind uint8

const (
	KindUnknown  Kind = iota
	KindType          // index is not an integer
	KindDomain        // index is negative
	KindOverflow      // value exceeds the fixed-width result type
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindDomain:
		return "domain"
	case KindOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Error is returned by the generator.
//
// The sentinel matching its Kind can be checked with errors.Is.
type Error struct {
	Kind  Kind
	Input string
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fibonacci(%s): %v", e.Input, e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, k int) *Error {
	return newErrorInput(kind, strconv.Itoa(k), nil)
}

func newErrorInput(kind Kind, input string, cause error) *Error {
	var sentinel error
	switch kind {
	case KindType:
		sentinel = ErrNotInteger
	case KindDomain:
		sentinel = ErrNegativeIndex
	case KindOverflow:
		sentinel = ErrOverflow
	}

	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %w", sentinel, cause)
	}

	return &Error{Kind: kind, Input: input, cause: err}
}

// KindOf returns the Kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
