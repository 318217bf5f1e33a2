package config

import (
	"fmt"
	"time"
)

type TelemetryConfig struct {
	Traces  TracesConfig  `koanf:"traces"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// TracesConfig enables span export to an OTLP/HTTP collector.
type TracesConfig struct {
	Enabled  bool           `koanf:"enabled"`
	OtlpHttp OtlpHttpConfig `koanf:"otlphttp"`
}

type OtlpHttpConfig struct {
	Endpoint string        `koanf:"endpoint"`
	Insecure bool          `koanf:"insecure"`
	Timeout  time.Duration `koanf:"timeout"`
}

// MetricsConfig enables the Prometheus exporter behind the /metrics route.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

func (c *TelemetryConfig) String() string {
	return newSection("Telemetry").
		field("traces.enabled", c.Traces.Enabled).
		field("traces.otlphttp.endpoint", c.Traces.OtlpHttp.Endpoint).
		field("traces.otlphttp.insecure", c.Traces.OtlpHttp.Insecure).
		field("traces.otlphttp.timeout", c.Traces.OtlpHttp.Timeout).
		field("metrics.enabled", c.Metrics.Enabled).
		String()
}

func (c *TelemetryConfig) Validate() error {
	if !c.Traces.Enabled {
		return nil
	}
	if c.Traces.OtlpHttp.Endpoint == "" {
		return fmt.Errorf("telemetry.traces.otlphttp.endpoint is required when traces are enabled")
	}
	return positive("telemetry.traces.otlphttp.timeout", c.Traces.OtlpHttp.Timeout)
}
