package telemetry_test

import (
	"context"
	"testing"

	"github.com/vovakirdan/playzone/internal/config"
	"github.com/vovakirdan/playzone/internal/telemetry"
)

func TestSetup_NoopWhenDisabled(t *testing.T) {
	cfg := config.TelemetryConfig{Enabled: false, Endpoint: "http://localhost:4318"}

	shutdown, err := telemetry.Setup(context.Background(), "playzone-test", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), "playzone-test", config.TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProvider(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TelemetryConfig
	}{
		// Non-routable addresses so nothing is exported.
		{"url", config.TelemetryConfig{Enabled: true, Endpoint: "http://192.0.2.1:4318"}},
		{"host port", config.TelemetryConfig{Enabled: true, Endpoint: "192.0.2.1:4318", Insecure: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := telemetry.Setup(context.Background(), "playzone-test", tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown error: %v", err)
			}
		})
	}
}
