package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ToolMetrics records invocations of the assistant's data tools.
type ToolMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewToolMetrics registers the tool metrics on the provided registerer.
func NewToolMetrics(reg prometheus.Registerer) *ToolMetrics {
	if reg == nil {
		return &ToolMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assistant_tool_duration_seconds",
		Help:    "Duration of assistant tool invocations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"tool"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_tool_success_total",
		Help: "Tool invocations that returned data.",
	}, []string{"tool"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_tool_failure_total",
		Help: "Tool invocations that fell back to an error string.",
	}, []string{"tool"})
	reg.MustRegister(duration, success, failure)
	return &ToolMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named tool.
func (m *ToolMetrics) ObserveDuration(tool string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(tool)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named tool.
func (m *ToolMetrics) IncSuccess(tool string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(tool)).Inc()
}

// IncFailure increments the failure counter for the named tool.
func (m *ToolMetrics) IncFailure(tool string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(tool)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
