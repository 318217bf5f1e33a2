package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaskURL(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "empty", url: "", expected: "<not configured>"},
		{name: "password redacted", url: "postgres://catalog:secret@db:5432/catalog", expected: "postgres://catalog:xxxxx@db:5432/catalog"},
		{name: "no credentials", url: "nats://localhost:4222", expected: "nats://localhost:4222"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskURL(tc.url))
		})
	}
}

func TestSections_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		section     interface{ Validate() error }
		expectedErr string
	}{
		{
			name:        "grpc port must be numeric",
			section:     &GrpcServerConfig{Port: "grpc", HealthInterval: time.Second},
			expectedErr: `grpc.port must be a port number, got "grpc"`,
		},
		{
			name:    "disabled nats skips url check",
			section: &NATSConfig{},
		},
		{
			name:        "enabled nats needs nats scheme",
			section:     &NATSConfig{Enabled: true, Url: "http://localhost:4222", Timeout: time.Second},
			expectedErr: "nats.url must be a nats:// URL",
		},
		{
			name:        "unknown log level",
			section:     &LogConfig{Level: "trace"},
			expectedErr: `log.level "trace" is not one of`,
		},
		{
			name:        "traces without endpoint",
			section:     &TelemetryConfig{Traces: TracesConfig{Enabled: true}},
			expectedErr: "telemetry.traces.otlphttp.endpoint is required",
		},
		{
			name:        "breaker error rate out of range",
			section:     &CircuitBreakerConfig{ConsecutiveFailures: 1, ErrorRatePercent: 101, OpenTimeout: time.Second},
			expectedErr: "publisher.circuitbreaker.errorratepercent must be between 0 and 100, got 101",
		},
		{
			name:        "enabled pprof without address",
			section:     &PProfConfig{Enabled: true},
			expectedErr: "pprof.addr is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.section.Validate()
			if tc.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.expectedErr)
		})
	}
}

func TestSection_String(t *testing.T) {
	cfg := ShutdownConfig{Timeout: 10 * time.Second}
	assert.Equal(t, "\n--- Shutdown ---\n  timeout: 10s\n", cfg.String())
}
