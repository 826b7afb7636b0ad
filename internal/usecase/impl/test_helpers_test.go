package impl

import (
	"io"
	"log/slog"

	"foodcourt/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// newTestLogger returns a logger that swallows all output.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestMetrics returns a collector backed by a throwaway registry, so
// parallel tests never collide on metric registration.
func newTestMetrics() *metrics.Collector {
	return metrics.NewCollector(prometheus.NewRegistry())
}
