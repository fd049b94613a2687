// Package metrics records HTTP and authorization metrics through the
// OpenTelemetry metric API and exposes them to Prometheus.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "survey_platform"

// Auth decision outcomes.
const (
	OutcomeAllowed      = "allowed"
	OutcomeUnauthorized = "unauthorized"
	OutcomeForbidden    = "forbidden"
	OutcomeError        = "error"
)

// Recorder holds the instruments. A nil *Recorder is valid and records nothing.
type Recorder struct {
	requests      metric.Int64Counter
	duration      metric.Float64Histogram
	authDecisions metric.Int64Counter
}

// NewRecorder creates the instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	requests, err := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"http.server.duration_ms",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	authDecisions, err := meter.Int64Counter(
		"auth.decisions",
		metric.WithDescription("Authentication and role guard decisions"),
		metric.WithUnit("{decision}"),
	)
	if err != nil {
		return nil, err
	}

	return &Recorder{
		requests:      requests,
		duration:      duration,
		authDecisions: authDecisions,
	}, nil
}

// RecordRequest records one served request.
func (r *Recorder) RecordRequest(ctx context.Context, method, route string, status int, d time.Duration) {
	if r == nil {
		return
	}
	opt := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
	r.requests.Add(ctx, 1, opt)
	r.duration.Record(ctx, float64(d.Milliseconds()), opt)
}

// RecordAuthDecision records the outcome of the auth middleware or a role guard.
func (r *Recorder) RecordAuthDecision(ctx context.Context, guard, outcome string) {
	if r == nil {
		return
	}
	r.authDecisions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("guard", guard),
		attribute.String("outcome", outcome),
	))
}

// Provider bundles the meter provider with its Prometheus scrape handler.
type Provider struct {
	MeterProvider *sdkmetric.MeterProvider
	Handler       http.Handler
}

// NewPrometheusProvider builds a meter provider whose reader is the OTel
// Prometheus exporter registered on the default Prometheus registry.
func NewPrometheusProvider() (*Provider, error) {
	exp, err := otelprom.New()
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	return &Provider{MeterProvider: mp, Handler: promhttp.Handler()}, nil
}

// Recorder creates a Recorder on the provider's meter.
func (p *Provider) Recorder() (*Recorder, error) {
	return NewRecorder(p.MeterProvider.Meter(meterName))
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.MeterProvider.Shutdown(ctx)
}
