// Package telemetry provides OpenTelemetry instrumentation exported to Honeycomb.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "dungeoncrawl"
	serviceVersion = "0.1.0"

	defaultEndpoint = "https://api.honeycomb.io"
	defaultDataset  = "dungeoncrawl"
)

// Environment variables read by SettingsFromEnv.
const (
	EnvAPIKey   = "HONEYCOMB_DUNGEONCRAWL_API_KEY"
	EnvDataset  = "HONEYCOMB_DUNGEONCRAWL_DATASET"
	EnvEndpoint = "HONEYCOMB_DUNGEONCRAWL_ENDPOINT"
)

// Settings describes where spans are sent.
type Settings struct {
	APIKey   string
	Dataset  string
	Endpoint string
}

// SettingsFromEnv reads settings through lookup (usually os.LookupEnv),
// filling in the Honeycomb defaults.
func SettingsFromEnv(lookup func(string) (string, bool)) Settings {
	s := Settings{Dataset: defaultDataset, Endpoint: defaultEndpoint}
	if v, ok := lookup(EnvAPIKey); ok {
		s.APIKey = v
	}
	if v, ok := lookup(EnvDataset); ok && v != "" {
		s.Dataset = v
	}
	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		s.Endpoint = v
	}
	return s
}

// Enabled reports whether an exporter should be started.
func (s Settings) Enabled() bool {
	return s.APIKey != ""
}

// headers builds the Honeycomb authentication headers.
func (s Settings) headers() map[string]string {
	return map[string]string{
		"x-honeycomb-team":    s.APIKey,
		"x-honeycomb-dataset": s.Dataset,
	}
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter. Without an API
// key it installs a no-op provider and returns a shutdown that does nothing.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, s Settings) (shutdown func(context.Context) error, err error) {
	if !s.Enabled() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(s.Endpoint),
		otlptracehttp.WithHeaders(s.headers()),
	)
	if err != nil {
		return nil, err
	}

	// We create our own resource without merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
