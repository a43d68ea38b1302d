// Package prommetrics exports fibsearch metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	e := fibsearch.NewEngine(fibsearch.WithMetricsCollector(prommetrics.NewCollector(reg, "app")))
package prommetrics

import (
	"time"

	"github.com/hupe1980/fibsearch"
	"github.com/prometheus/client_golang/prometheus"
)

var _ fibsearch.MetricsCollector = (*Collector)(nil)

// Collector implements fibsearch.MetricsCollector on Prometheus metrics.
type Collector struct {
	searches      *prometheus.CounterVec
	probes        prometheus.Histogram
	searchLatency prometheus.Histogram
	batches       *prometheus.CounterVec
	batchSize     prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used. It panics if the
// metrics are already registered.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fibsearch_searches_total",
			Help:      "Total searches by result",
		}, []string{"result"}),
		probes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fibsearch_probes",
			Help:      "Comparisons per search",
			Buckets:   prometheus.LinearBuckets(0, 4, 24),
		}),
		searchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fibsearch_search_latency_seconds",
			Help:      "Latency of single searches",
			Buckets:   prometheus.ExponentialBuckets(1e-8, 4, 12),
		}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fibsearch_batches_total",
			Help:      "Total batch searches by status",
		}, []string{"status"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fibsearch_batch_size",
			Help:      "Lookups per batch search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	reg.MustRegister(c.searches, c.probes, c.searchLatency, c.batches, c.batchSize)
	return c
}

// RecordSearch implements fibsearch.MetricsCollector.
func (c *Collector) RecordSearch(n, probes int, found bool, d time.Duration) {
	result := "not_found"
	if found {
		result = "found"
	}
	c.searches.WithLabelValues(result).Inc()
	c.probes.Observe(float64(probes))
	c.searchLatency.Observe(d.Seconds())
}

// RecordBatchSearch implements fibsearch.MetricsCollector.
func (c *Collector) RecordBatchSearch(count int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.batches.WithLabelValues(status).Inc()
	c.batchSize.Observe(float64(count))
}
