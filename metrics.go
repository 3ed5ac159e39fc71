package freud

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    computeCounter   prometheus.Counter
//	    computeHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordCompute(n int, duration time.Duration, err error) {
//	    p.computeCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordBoxUpdate is called after each box update. rebuilt reports
	// whether the neighbor finder was rebuilt, err is nil if successful.
	RecordBoxUpdate(rebuilt bool, err error)

	// RecordCompute is called after each compute pass. n is the number of
	// particles scored, duration is the total time taken, err is nil if
	// successful.
	RecordCompute(n int, duration time.Duration, err error)
}

// Compile time checks to ensure the collectors satisfy the MetricsCollector interface.
var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
)

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBoxUpdate(bool, error)             {}
func (NoopMetricsCollector) RecordCompute(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BoxUpdateCount    atomic.Int64
	BoxUpdateErrors   atomic.Int64
	BoxRebuilds       atomic.Int64
	ComputeCount      atomic.Int64
	ComputeErrors     atomic.Int64
	ComputeParticles  atomic.Int64
	ComputeTotalNanos atomic.Int64
}

// RecordBoxUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBoxUpdate(rebuilt bool, err error) {
	b.BoxUpdateCount.Add(1)
	if rebuilt {
		b.BoxRebuilds.Add(1)
	}
	if err != nil {
		b.BoxUpdateErrors.Add(1)
	}
}

// RecordCompute implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompute(n int, duration time.Duration, err error) {
	b.ComputeCount.Add(1)
	b.ComputeParticles.Add(int64(n))
	b.ComputeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ComputeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BoxUpdateCount:   b.BoxUpdateCount.Load(),
		BoxUpdateErrors:  b.BoxUpdateErrors.Load(),
		BoxRebuilds:      b.BoxRebuilds.Load(),
		ComputeCount:     b.ComputeCount.Load(),
		ComputeErrors:    b.ComputeErrors.Load(),
		ComputeParticles: b.ComputeParticles.Load(),
		ComputeAvgNanos:  b.getAvgComputeNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgComputeNanos() int64 {
	count := b.ComputeCount.Load()
	if count == 0 {
		return 0
	}
	return b.ComputeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BoxUpdateCount   int64
	BoxUpdateErrors  int64
	BoxRebuilds      int64
	ComputeCount     int64
	ComputeErrors    int64
	ComputeParticles int64
	ComputeAvgNanos  int64
}
