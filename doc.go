// Package fibsearch provides Fibonacci search over sorted, randomly-indexable sequences.
//
// Fibonacci search partitions the search space using Fibonacci numbers instead
// of powers of two. It needs O(log n) comparisons and computes probe indices
// with additions and subtractions only.
//
// # Quick Start
//
//	idx := fibsearch.Search([]int{4, 5, 6, 7}, 6) // 2
//	idx = fibsearch.Search([]int{4, 5, 6, 7}, 9)  // fibsearch.NotFound
//
// Custom orderings and abstract sequences:
//
//	idx := fibsearch.SearchFunc(people, "bob", func(p Person, name string) int {
//	    return strings.Compare(p.Name, name)
//	})
//
//	idx = fibsearch.SearchSeq(mySeq, 42) // mySeq implements Sequence[int]
//
// # Duplicates
//
// When the target occurs more than once, the index returned is the first match
// on the probe path, not necessarily the first occurrence:
//
//	fibsearch.Search([]int{1, 1, 1, 2, 3}, 1) // 2
//
// # Engines
//
// Package-level functions share a default Engine. Create your own to attach
// logging, metrics or batch limits:
//
//	e := fibsearch.NewEngine(
//	    fibsearch.WithLogger(fibsearch.NewJSONLogger(slog.LevelDebug)),
//	    fibsearch.WithMetricsCollector(&fibsearch.BasicMetricsCollector{}),
//	    fibsearch.WithMaxConcurrency(4),
//	)
//	results, err := fibsearch.SearchBatch(ctx, e, haystack, needles)
//
// # Explain
//
// Explain records every probe of a single search:
//
//	x := e.Explain(len(s), fibsearch.Comparator(s, v))
//	for _, step := range x.Steps {
//	    fmt.Println(step.Level, step.Offset, step.Probe, step.Outcome)
//	}
//
// The Fibonacci numbers themselves are served by package fibonacci, whose
// memoized table is shared by all engines unless WithGenerator is used.
package fibsearch
