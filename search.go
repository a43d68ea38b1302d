package fibsearch

import (
	"cmp"
	"fmt"
)

// Sequence is a sorted, randomly-indexable collection with a known length.
type Sequence[E any] interface {
	Len() int
	At(i int) E
}

// Search returns an index of v in the ascending slice s, or NotFound.
func Search[S ~[]E, E cmp.Ordered](s S, v E) int {
	return defaultEngine.Find(len(s), Comparator(s, v))
}

// SearchFunc is like Search but orders elements with a custom comparison.
//
// cmp(e, target) returns a negative number if e orders before target, zero if
// they match and a positive number if e orders after target.
func SearchFunc[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) int {
	return defaultEngine.Find(len(s), func(i int) int {
		return cmp(s[i], target)
	})
}

// SearchSeq searches any Sequence for v.
func SearchSeq[E cmp.Ordered](seq Sequence[E], v E) int {
	return defaultEngine.Find(seq.Len(), func(i int) int {
		return cmp.Compare(seq.At(i), v)
	})
}

// Index is like Search but reports a missing value as ErrNotFound.
func Index[S ~[]E, E cmp.Ordered](s S, v E) (int, error) {
	idx := Search(s, v)
	if idx == NotFound {
		return NotFound, fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	return idx, nil
}

// Comparator adapts s and v to the callback taken by Engine.Find.
func Comparator[S ~[]E, E cmp.Ordered](s S, v E) func(i int) int {
	return func(i int) int {
		return cmp.Compare(s[i], v)
	}
}
