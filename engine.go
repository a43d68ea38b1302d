package fibsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/fibsearch/fibonacci"
	"github.com/hupe1980/fibsearch/internal/resource"
)

// Engine runs Fibonacci searches.
//
// An Engine holds no per-search state and is safe for concurrent use.
type Engine struct {
	gen     *fibonacci.Generator
	logger  *Logger
	metrics MetricsCollector
	rc      *resource.Controller
}

var defaultEngine = NewEngine()

// NewEngine creates an Engine.
func NewEngine(optFns ...Option) *Engine {
	o := applyOptions(optFns)

	return &Engine{
		gen:     o.generator,
		logger:  o.logger,
		metrics: o.metricsCollector,
		rc: resource.NewController(resource.Config{
			MaxConcurrency: o.maxConcurrency,
			LookupsPerSec:  o.lookupsPerSec,
			Burst:          o.burst,
		}),
	}
}

// Default returns the engine used by the package-level search functions.
func Default() *Engine {
	return defaultEngine
}

// Generator returns the Fibonacci generator backing the engine.
func (e *Engine) Generator() *fibonacci.Generator {
	return e.gen
}

// Find searches the indices [0, n) and returns the first matching index on
// the probe path, or NotFound.
//
// cmp(i) must return a negative number if element i orders before the target,
// zero if it matches, and a positive number if it orders after it. Elements
// must be sorted ascending under cmp.
func (e *Engine) Find(n int, cmp func(i int) int) int {
	start := time.Now()
	idx, probes := e.find(n, cmp, nil)
	e.observe(n, probes, idx, time.Since(start))
	return idx
}

// Explain runs Find and records each probe.
func (e *Engine) Explain(n int, cmp func(i int) int) *Explanation {
	x := newExplanation(n)

	start := time.Now()
	idx, probes := e.find(n, cmp, x)
	e.observe(n, probes, idx, time.Since(start))

	x.Index = idx
	return x
}

// Level returns the smallest m such that F(m) >= n.
func (e *Engine) Level(n int) int {
	if n <= 0 {
		return 0
	}
	for m := 0; ; m++ {
		if e.fib(m) >= uint64(n) {
			return m
		}
	}
}

// find is the search loop. It returns the index and the number of probes.
//
// With level and offset as the cursor, offset+F(level) never exceeds the
// initial F(level), so offset fits in a uint64 for every n.
func (e *Engine) find(n int, cmp func(i int) int, x *Explanation) (int, int) {
	level := e.Level(n)
	if x != nil {
		x.InitialLevel = level
	}

	var (
		offset uint64
		probes int
	)

	for level > 0 {
		step := e.fib(level - 1)

		probe := n - 1
		if p := offset + step; p < uint64(n-1) {
			probe = int(p)
		}

		c := cmp(probe)
		probes++

		if x != nil {
			x.record(level, offset, probe, c)
		}

		switch {
		case c == 0:
			return probe, probes
		case c > 0:
			level--
		default:
			offset += step
			level -= 2
		}
	}

	return NotFound, probes
}

// fib returns F(k). Indices passed here are non-negative and bounded by the
// level of the largest int, so the generator cannot fail.
func (e *Engine) fib(k int) uint64 {
	v, err := e.gen.Get(k)
	if err != nil {
		panic(fmt.Errorf("fibsearch: %w", err))
	}
	return v
}

func (e *Engine) observe(n, probes, idx int, d time.Duration) {
	found := idx != NotFound
	e.metrics.RecordSearch(n, probes, found, d)
	e.logger.LogSearch(context.Background(), n, probes, idx)
}
