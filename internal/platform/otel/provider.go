package otel

import (
	"context"
	"strings"

	"github.com/louisbranch/foodgram/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings controls trace export.
type Settings struct {
	// Endpoint is the OTLP/HTTP collector URL. Empty disables export.
	Endpoint string `env:"FOODGRAM_OTEL_ENDPOINT"`
	// Enabled can force tracing off even when an endpoint is configured.
	Enabled string `env:"FOODGRAM_OTEL_ENABLED"`
}

// SettingsFromEnv reads tracing settings from the environment.
func SettingsFromEnv() (Settings, error) {
	var settings Settings
	if err := config.ParseEnv(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s Settings) active() bool {
	if strings.EqualFold(strings.TrimSpace(s.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(s.Endpoint) != ""
}

// Setup initialises OpenTelemetry tracing for the given service using
// settings read from the environment.
//
// Tracing is opt-in: when FOODGRAM_OTEL_ENDPOINT is empty or
// FOODGRAM_OTEL_ENABLED is "false", Setup returns a no-op shutdown function
// and no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	settings, err := SettingsFromEnv()
	if err != nil {
		return func(context.Context) error { return nil }, err
	}
	return SetupWithSettings(ctx, serviceName, settings)
}

// SetupWithSettings initialises tracing from explicit settings.
func SetupWithSettings(ctx context.Context, serviceName string, settings Settings) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if !settings.active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(settings.Endpoint)),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
