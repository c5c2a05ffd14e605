package gopatterns

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFit is called after each clustering run.
	// clusters is the number of non-empty clusters in the result.
	RecordFit(strategy string, iterations, clusters int, duration time.Duration, err error)

	// RecordNotify is called after a publisher fanned out an update.
	// delivered is the number of subscribers that accepted it.
	RecordNotify(subscribers, delivered int, duration time.Duration)

	// RecordExport is called after each report export.
	RecordExport(bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(string, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordNotify(int, int, time.Duration)             {}
func (NoopMetricsCollector) RecordExport(int, time.Duration, error)           {}

// MultiMetricsCollector forwards every record to each of its collectors.
type MultiMetricsCollector []MetricsCollector

func (m MultiMetricsCollector) RecordFit(strategy string, iterations, clusters int, duration time.Duration, err error) {
	for _, c := range m {
		c.RecordFit(strategy, iterations, clusters, duration, err)
	}
}

func (m MultiMetricsCollector) RecordNotify(subscribers, delivered int, duration time.Duration) {
	for _, c := range m {
		c.RecordNotify(subscribers, delivered, duration)
	}
}

func (m MultiMetricsCollector) RecordExport(bytes int, duration time.Duration, err error) {
	for _, c := range m {
		c.RecordExport(bytes, duration, err)
	}
}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	FitCount         atomic.Int64
	FitErrors        atomic.Int64
	FitIterations    atomic.Int64
	FitTotalNanos    atomic.Int64
	NotifyCount      atomic.Int64
	NotifyDeliveries atomic.Int64
	NotifyFailures   atomic.Int64
	ExportCount      atomic.Int64
	ExportErrors     atomic.Int64
	ExportBytes      atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(_ string, iterations, _ int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitIterations.Add(int64(iterations))
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordNotify implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNotify(subscribers, delivered int, _ time.Duration) {
	b.NotifyCount.Add(1)
	b.NotifyDeliveries.Add(int64(delivered))
	b.NotifyFailures.Add(int64(subscribers - delivered))
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(bytes int, _ time.Duration, err error) {
	b.ExportCount.Add(1)
	if err != nil {
		b.ExportErrors.Add(1)
		return
	}
	b.ExportBytes.Add(int64(bytes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:         b.FitCount.Load(),
		FitErrors:        b.FitErrors.Load(),
		FitIterations:    b.FitIterations.Load(),
		FitAvgNanos:      b.getAvgFitNanos(),
		NotifyCount:      b.NotifyCount.Load(),
		NotifyDeliveries: b.NotifyDeliveries.Load(),
		NotifyFailures:   b.NotifyFailures.Load(),
		ExportCount:      b.ExportCount.Load(),
		ExportErrors:     b.ExportErrors.Load(),
		ExportBytes:      b.ExportBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFitNanos() int64 {
	count := b.FitCount.Load()
	if count == 0 {
		return 0
	}
	return b.FitTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount         int64
	FitErrors        int64
	FitIterations    int64
	FitAvgNanos      int64
	NotifyCount      int64
	NotifyDeliveries int64
	NotifyFailures   int64
	ExportCount      int64
	ExportErrors     int64
	ExportBytes      int64
}
