package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ToolCallOutcome labels the result of a tool call for metrics.
type ToolCallOutcome string

const (
	ToolCallOutcomeSuccess ToolCallOutcome = "success"
	ToolCallOutcomeError   ToolCallOutcome = "error"
)

// CustomMetrics records gateway-specific measurements. A no-op implementation
// is used when telemetry is disabled so callers never need to branch on
// whether metrics are enabled.
type CustomMetrics interface {
	RecordToolCall(ctx context.Context, tool string, outcome ToolCallOutcome, elapsed time.Duration)
}

type noopCustomMetrics struct{}

// NewNoopCustomMetrics returns a CustomMetrics that discards everything.
func NewNoopCustomMetrics() CustomMetrics {
	return &noopCustomMetrics{}
}

func (n *noopCustomMetrics) RecordToolCall(context.Context, string, ToolCallOutcome, time.Duration) {}

type otelCustomMetrics struct {
	toolCalls        metric.Int64Counter
	toolCallDuration metric.Float64Histogram
}

// NewOtelCustomMetrics creates the real metrics backed by the given meter.
func NewOtelCustomMetrics(meter metric.Meter) (CustomMetrics, error) {
	toolCalls, err := meter.Int64Counter(
		"boswell_tool_calls_total",
		metric.WithDescription("Number of tool calls dispatched by the gateway"),
	)
	if err != nil {
		return nil, err
	}
	toolCallDuration, err := meter.Float64Histogram(
		"boswell_tool_call_duration_seconds",
		metric.WithDescription("Duration of tool calls, including the backend round trip"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &otelCustomMetrics{toolCalls: toolCalls, toolCallDuration: toolCallDuration}, nil
}

func (m *otelCustomMetrics) RecordToolCall(
	ctx context.Context, tool string, outcome ToolCallOutcome, elapsed time.Duration,
) {
	attrs := metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", string(outcome)),
	)
	m.toolCalls.Add(ctx, 1, attrs)
	m.toolCallDuration.Record(ctx, elapsed.Seconds(), attrs)
}
