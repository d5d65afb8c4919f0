package service

import (
	"sync/atomic"
	"time"
)

// Metrics counts calls to the generation provider.
type Metrics struct {
	calls   atomic.Int64
	errors  atomic.Int64
	latency atomic.Int64 // total, nanoseconds
}

// Snapshot is a point-in-time copy of Metrics.
type Snapshot struct {
	Calls        int64   `json:"calls"`
	Errors       int64   `json:"errors"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	ErrorRate    float64 `json:"error_rate"`
}

func (m *Metrics) record(d time.Duration, err error) {
	m.calls.Add(1)
	m.latency.Add(d.Nanoseconds())
	if err != nil {
		m.errors.Add(1)
	}
}

func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		Calls:  m.calls.Load(),
		Errors: m.errors.Load(),
	}
	if s.Calls == 0 {
		return s
	}
	s.AvgLatencyMs = float64(m.latency.Load()) / float64(s.Calls) / 1e6
	s.ErrorRate = float64(s.Errors) / float64(s.Calls) * 100
	return s
}
