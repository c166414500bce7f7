package sievego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordClassify is called after each Classify operation.
	// count is the number of candidates, scalarResolved how many verdicts
	// came from trial division, duration the total time taken.
	RecordClassify(count, scalarResolved int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordClassify(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ClassifyCount      atomic.Int64
	ClassifyItems      atomic.Int64
	ScalarResolved     atomic.Int64
	ClassifyTotalNanos atomic.Int64
}

// RecordClassify implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClassify(count, scalarResolved int, duration time.Duration) {
	b.ClassifyCount.Add(1)
	b.ClassifyItems.Add(int64(count))
	b.ScalarResolved.Add(int64(scalarResolved))
	b.ClassifyTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ClassifyCount:    b.ClassifyCount.Load(),
		ClassifyItems:    b.ClassifyItems.Load(),
		ScalarResolved:   b.ScalarResolved.Load(),
		ClassifyAvgNanos: b.getAvgClassifyNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgClassifyNanos() int64 {
	count := b.ClassifyCount.Load()
	if count == 0 {
		return 0
	}
	return b.ClassifyTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ClassifyCount    int64
	ClassifyItems    int64
	ScalarResolved   int64
	ClassifyAvgNanos int64
}
