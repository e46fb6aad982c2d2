package olog

import "github.com/trickstertwo/logbridge"

// MetricsCollector receives write metrics. Implementations must be concurrency-safe.
type MetricsCollector interface {
	LoggedMessage(level logbridge.Level, durMS float64, size int, err error)
}

type NoopMetricsCollector struct{}

func (*NoopMetricsCollector) LoggedMessage(logbridge.Level, float64, int, error) {}
