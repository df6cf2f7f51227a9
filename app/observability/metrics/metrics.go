package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments. Fields are public so
// services can record to them directly; a nil *AppMetrics is safe to pass
// where metrics are not wired (e.g. unit tests).
type AppMetrics struct {
	RegisterRequestsTotal  metric.Int64Counter
	LoginRequestsTotal     metric.Int64Counter
	LoginFailuresTotal     metric.Int64Counter
	DbQueryDurationSeconds metric.Float64Histogram
}

// InitAppMetrics creates the metric instruments from the globally configured
// MeterProvider. Call once at startup, after the provider is installed.
func InitAppMetrics() (*AppMetrics, error) {
	meter := otel.GetMeterProvider().Meter("blog-api")
	m := &AppMetrics{}
	var err error

	m.RegisterRequestsTotal, err = meter.Int64Counter(
		"register_requests_total",
		metric.WithDescription("Total number of register requests completed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create register_requests_total: %w", err)
	}

	m.LoginRequestsTotal, err = meter.Int64Counter(
		"login_requests_total",
		metric.WithDescription("Total number of login requests completed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create login_requests_total: %w", err)
	}

	m.LoginFailuresTotal, err = meter.Int64Counter(
		"login_failures_total",
		metric.WithDescription("Total number of rejected login attempts"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create login_failures_total: %w", err)
	}

	m.DbQueryDurationSeconds, err = meter.Float64Histogram(
		"db_query_duration_seconds",
		metric.WithDescription("Duration of database queries in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create db_query_duration_seconds: %w", err)
	}

	return m, nil
}
