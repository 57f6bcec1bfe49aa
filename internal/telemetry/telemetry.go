// Package telemetry provides OpenTelemetry metrics for the gateway, exported
// in Prometheus format.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Config holds the telemetry initialization parameters.
type Config struct {
	ServiceName string
	Enabled     bool
}

// Providers bundles the OpenTelemetry providers created at startup.
// When telemetry is disabled, a Providers value is still returned so the
// rest of the code does not need nil checks.
type Providers struct {
	serviceName string
	enabled     bool

	Meter metric.Meter

	meterProvider *sdkmetric.MeterProvider
}

// Init sets up the meter provider with a Prometheus reader. The exporter
// registers against the default Prometheus registry, so the standard
// promhttp handler serves the resulting metrics.
func Init(_ context.Context, cfg *Config) (*Providers, error) {
	p := &Providers{serviceName: cfg.ServiceName, enabled: cfg.Enabled}
	if !cfg.Enabled {
		return p, nil
	}

	exporter, err := otelprom.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(mp)

	p.meterProvider = mp
	p.Meter = mp.Meter(cfg.ServiceName)
	return p, nil
}

// IsEnabled returns true if telemetry was enabled at init.
func (p *Providers) IsEnabled() bool {
	return p != nil && p.enabled
}

// ServiceName returns the service name used for instrumentation.
func (p *Providers) ServiceName() string {
	return p.serviceName
}

// Shutdown flushes and stops the meter provider.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil || p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
