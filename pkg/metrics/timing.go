// Package metrics records in-process timings for liftsheet's storage path.
//
// Collection is on by default and can be switched off with LIFTSHEET_METRICS=0.
// The CLI logs a summary at debug level when it exits.
//
//	defer metrics.Timer(metrics.StateSave)()
package metrics

import (
	"os"
	"sync/atomic"
	"time"
)

var enabled atomic.Bool

func init() {
	enabled.Store(os.Getenv("LIFTSHEET_METRICS") != "0")
}

// Enabled reports whether measurements are recorded.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled toggles collection.
func SetEnabled(e bool) {
	enabled.Store(e)
}

// TimingMetric accumulates durations for one named operation.
// It is safe for concurrent use.
type TimingMetric struct {
	name    string
	count   atomic.Int64
	totalNs atomic.Int64
	maxNs   atomic.Int64
	minNs   atomic.Int64 // 0 until the first sample
}

func newTimingMetric(name string) *TimingMetric {
	return &TimingMetric{name: name}
}

// Record adds one sample.
func (m *TimingMetric) Record(d time.Duration) {
	if !Enabled() {
		return
	}
	ns := d.Nanoseconds()
	if ns <= 0 {
		ns = 1
	}
	m.count.Add(1)
	m.totalNs.Add(ns)

	for {
		old := m.maxNs.Load()
		if ns <= old || m.maxNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.minNs.Load()
		if old != 0 && ns >= old {
			break
		}
		if m.minNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// Name returns the metric name.
func (m *TimingMetric) Name() string {
	return m.name
}

// Count returns the number of samples.
func (m *TimingMetric) Count() int64 {
	return m.count.Load()
}

// Stats returns a snapshot of the metric.
func (m *TimingMetric) Stats() TimingStats {
	count := m.count.Load()
	total := m.totalNs.Load()
	var avg int64
	if count > 0 {
		avg = total / count
	}
	return TimingStats{
		Name:    m.name,
		Count:   count,
		TotalMs: float64(total) / 1e6,
		AvgMs:   float64(avg) / 1e6,
		MaxMs:   float64(m.maxNs.Load()) / 1e6,
		MinMs:   float64(m.minNs.Load()) / 1e6,
	}
}

// Reset clears all samples.
func (m *TimingMetric) Reset() {
	m.count.Store(0)
	m.totalNs.Store(0)
	m.maxNs.Store(0)
	m.minNs.Store(0)
}

// TimingStats is a point-in-time copy of a TimingMetric.
type TimingStats struct {
	Name    string  `json:"name"`
	Count   int64   `json:"count"`
	TotalMs float64 `json:"total_ms"`
	AvgMs   float64 `json:"avg_ms"`
	MaxMs   float64 `json:"max_ms"`
	MinMs   float64 `json:"min_ms,omitempty"`
}

// Timer starts a measurement and returns the function that ends it.
func Timer(m *TimingMetric) func() {
	if !Enabled() || m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.Record(time.Since(start))
	}
}

var (
	StateLoad      = newTimingMetric("state_load")
	StateSave      = newTimingMetric("state_save")
	StoreFlush     = newTimingMetric("store_flush")
	MarkdownRender = newTimingMetric("markdown_render")
)

// All returns every registered metric.
func All() []*TimingMetric {
	return []*TimingMetric{StateLoad, StateSave, StoreFlush, MarkdownRender}
}

// ResetAll clears every registered metric.
func ResetAll() {
	for _, m := range All() {
		m.Reset()
	}
}

// Snapshot returns stats for the metrics that have samples.
func Snapshot() []TimingStats {
	out := make([]TimingStats, 0, len(All()))
	for _, m := range All() {
		if m.Count() > 0 {
			out = append(out, m.Stats())
		}
	}
	return out
}
