package telemetry

import (
	"context"
	"testing"
)

func TestSettingsFromEnv(t *testing.T) {
	env := map[string]string{
		EnvAPIKey:  "secret",
		EnvDataset: "",
	}
	s := SettingsFromEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	if !s.Enabled() {
		t.Error("settings with an API key should be enabled")
	}
	if s.Dataset != defaultDataset {
		t.Errorf("Dataset = %q, want default %q", s.Dataset, defaultDataset)
	}
	if s.Endpoint != defaultEndpoint {
		t.Errorf("Endpoint = %q, want default %q", s.Endpoint, defaultEndpoint)
	}
	if h := s.headers(); h["x-honeycomb-team"] != "secret" || h["x-honeycomb-dataset"] != defaultDataset {
		t.Errorf("headers() = %v", h)
	}
}

func TestSetupDisabled(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Setup(ctx, Settings{})
	if err != nil {
		t.Fatalf("Setup() without key error: %v", err)
	}
	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown() error: %v", err)
	}

	_, span := Tracer("test").Start(ctx, "noop")
	if span.SpanContext().IsValid() {
		t.Error("disabled telemetry should produce no-op spans")
	}
	span.End()
}
