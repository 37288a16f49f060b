package metrics

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
//
// The chat pipeline deliberately swallows model failures (every external
// call sits behind a fallback boundary), so these counters are the only
// place distinct failure causes remain visible.
type AppMetrics struct {
	ChatRequestsTotal        metric.Int64Counter
	ChatDurationSeconds      metric.Float64Histogram
	ModelCallsTotal          metric.Int64Counter
	ModelFailuresTotal       metric.Int64Counter
	FallbackActivationsTotal metric.Int64Counter
	IntentClassifiedTotal    metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// Get returns the global metrics instance, initializing it on first use.
// The meter comes from the globally configured MeterProvider.
func Get() *AppMetrics {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("JharkhandYatra")
		var err error
		m := &AppMetrics{}

		m.ChatRequestsTotal, err = meter.Int64Counter(
			"chat_requests_total",
			metric.WithDescription("Total number of chat requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_requests_total: %v", err)
		}

		m.ChatDurationSeconds, err = meter.Float64Histogram(
			"chat_duration_seconds",
			metric.WithDescription("Duration of chat requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_duration_seconds: %v", err)
		}

		m.ModelCallsTotal, err = meter.Int64Counter(
			"model_calls_total",
			metric.WithDescription("Total number of generative model calls attempted"),
			metric.WithUnit("{call}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create model_calls_total: %v", err)
		}

		m.ModelFailuresTotal, err = meter.Int64Counter(
			"model_failures_total",
			metric.WithDescription("Total number of generative model calls that failed or returned unusable output"),
			metric.WithUnit("{failure}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create model_failures_total: %v", err)
		}

		m.FallbackActivationsTotal, err = meter.Int64Counter(
			"fallback_activations_total",
			metric.WithDescription("Total number of deterministic fallback tier activations"),
			metric.WithUnit("{activation}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create fallback_activations_total: %v", err)
		}

		m.IntentClassifiedTotal, err = meter.Int64Counter(
			"intent_classified_total",
			metric.WithDescription("Total number of classified intents by label and path"),
			metric.WithUnit("{intent}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create intent_classified_total: %v", err)
		}

		appMetrics = m
	})
	return appMetrics
}

// RecordModelCall counts one model call attempt for the given pipeline stage.
func (m *AppMetrics) RecordModelCall(ctx context.Context, stage string) {
	m.ModelCallsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordModelFailure counts one swallowed model failure with its cause.
func (m *AppMetrics) RecordModelFailure(ctx context.Context, stage, cause string) {
	m.ModelFailuresTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("cause", cause),
	))
}

// RecordFallback counts one activation of a deterministic fallback tier.
func (m *AppMetrics) RecordFallback(ctx context.Context, component string) {
	m.FallbackActivationsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("component", component)))
}

// RecordIntent counts one classified intent, tagged with the path that
// produced it ("model" or "keyword").
func (m *AppMetrics) RecordIntent(ctx context.Context, intent, path string) {
	m.IntentClassifiedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("intent", intent),
		attribute.String("path", path),
	))
}
