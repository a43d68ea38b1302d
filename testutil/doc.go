// Package testutil provides testing utilities for fibsearch.
//
// This package is intended for use in tests and benchmarks only.
//
//	rng := testutil.NewRNG(seed)
//	s := rng.SortedInts(1000, 3)      // ascending, gaps in [0, 3]
//	f := rng.SortedFloats(1000)       // ascending in [0, 1)
package testutil
