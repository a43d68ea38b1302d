package fibsearch

import (
	"errors"

	"github.com/hupe1980/fibsearch/fibonacci"
)

// NotFound is the index returned when the target does not occur in the sequence.
const NotFound = -1

var (
	// ErrNotFound is returned by Index when the target does not occur in the sequence.
	ErrNotFound = errors.New("not found")

	// ErrNotInteger is returned when a Fibonacci index is not an integer.
	ErrNotInteger = fibonacci.ErrNotInteger

	// ErrNegativeIndex is returned when a Fibonacci index is negative.
	ErrNegativeIndex = fibonacci.ErrNegativeIndex

	// ErrOverflow is returned when a Fibonacci number exceeds its result type.
	ErrOverflow = fibonacci.ErrOverflow
)
