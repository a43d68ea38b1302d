package fibsearch

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting search metrics.
// Implement this interface to integrate with monitoring systems; package
// prommetrics provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordSearch is called after each search, including each lookup of a batch.
	// n is the sequence length and probes the number of comparisons made.
	RecordSearch(n, probes int, found bool, duration time.Duration)

	// RecordBatchSearch is called after each batch search.
	// count is the number of lookups requested, err is nil if successful.
	RecordBatchSearch(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, int, bool, time.Duration)  {}
func (NoopMetricsCollector) RecordBatchSearch(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchFound      atomic.Int64
	ProbeTotal       atomic.Int64
	SearchTotalNanos atomic.Int64
	BatchCount       atomic.Int64
	BatchItems       atomic.Int64
	BatchErrors      atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(n, probes int, found bool, duration time.Duration) {
	b.SearchCount.Add(1)
	b.ProbeTotal.Add(int64(probes))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if found {
		b.SearchFound.Add(1)
	}
}

// RecordBatchSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchSearch(count int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.SearchCount.Load()

	s := BasicMetricsStats{
		SearchCount: count,
		SearchFound: b.SearchFound.Load(),
		ProbeTotal:  b.ProbeTotal.Load(),
		BatchCount:  b.BatchCount.Load(),
		BatchItems:  b.BatchItems.Load(),
		BatchErrors: b.BatchErrors.Load(),
	}
	if count > 0 {
		s.AvgProbes = float64(s.ProbeTotal) / float64(count)
		s.SearchAvgNanos = b.SearchTotalNanos.Load() / count
	}
	return s
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount    int64
	SearchFound    int64
	ProbeTotal     int64
	AvgProbes      float64
	SearchAvgNanos int64
	BatchCount     int64
	BatchItems     int64
	BatchErrors    int64
}
