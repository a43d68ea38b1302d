// Package fibonacci provides a memoized, concurrency-safe Fibonacci number generator.
//
// Values are computed bottom-up with two running accumulators and kept in an
// append-only table for the lifetime of the Generator, so repeated queries for
// nearby indices (as issued by Fibonacci search) are served from memory.
//
//	f, err := fibonacci.Get(10) // 55
//
// # Range
//
// Get returns uint64 values and fails with ErrOverflow for k > MaxIndex.
// Big has no upper bound:
//
//	f, err := fibonacci.Big(300)
//
// # Errors
//
// Errors are *Error values carrying a Kind. Use errors.Is with ErrNotInteger,
// ErrNegativeIndex or ErrOverflow:
//
//	k, err := fibonacci.ParseIndex("3.14")
//	errors.Is(err, fibonacci.ErrNotInteger) // true
package fibonacci
