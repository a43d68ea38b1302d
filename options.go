package fibsearch

import (
	"log/slog"

	"github.com/hupe1980/fibsearch/fibonacci"
)

type options struct {
	generator        *fibonacci.Generator
	metricsCollector MetricsCollector
	logger           *Logger
	maxConcurrency   int64
	lookupsPerSec    float64
	burst            int
}

// Option configures an Engine.
type Option func(*options)

// WithGenerator configures the Fibonacci generator.
//
// If nil is passed, fibonacci.Default is used.
func WithGenerator(g *fibonacci.Generator) Option {
	return func(o *options) {
		if g == nil {
			g = fibonacci.Default
		}
		o.generator = g
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &fibsearch.BasicMetricsCollector{}
//	e := fibsearch.NewEngine(fibsearch.WithMetricsCollector(metrics))
//	// ... use e ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg probes: %.1f\n", stats.SearchCount, stats.AvgProbes)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fibsearch.NewJSONLogger(slog.LevelDebug)
//	e := fibsearch.NewEngine(fibsearch.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMaxConcurrency limits the number of concurrent lookups of a batch search.
// Values <= 0 use GOMAXPROCS.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		o.maxConcurrency = int64(n)
	}
}

// WithRateLimit limits batch searches to perSec lookups per second with the
// given burst. perSec <= 0 disables the limit.
func WithRateLimit(perSec float64, burst int) Option {
	return func(o *options) {
		o.lookupsPerSec = perSec
		o.burst = burst
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		generator:        fibonacci.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
