// Package observability provides request logging and tracing middleware.
package observability

import (
	"net/http"
	"time"

	"github.com/louisbranch/foodgram/internal/platform/logging"
	"github.com/louisbranch/foodgram/internal/services/web/platform/httpx"
	"github.com/louisbranch/foodgram/internal/services/web/routepath"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/louisbranch/foodgram/internal/services/web"

// RequestLogger writes one access log entry per request. A panicking request
// is logged with status 500 before the panic continues to RecoverPanic.
func RequestLogger(logger *zap.Logger) httpx.Middleware {
	logger = logging.OrNop(logger)
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			sw := httpx.NewStatusWriter(w)
			defer func() {
				status := sw.Status()
				recovered := recover()
				if recovered != nil {
					status = http.StatusInternalServerError
				}
				logger.Info("http request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", status),
					zap.Int("bytes", sw.BytesWritten()),
					zap.Duration("duration", time.Since(started)),
					zap.String("request_id", httpx.RequestIDFrom(r)),
				)
				if recovered != nil {
					panic(recovered)
				}
			}()
			next.ServeHTTP(sw, r)
		})
	}
}

// Tracing starts a server span per request, continuing any incoming trace
// context. Span names use the bounded route label. A nil provider uses the
// global one.
func Tracing(provider trace.TracerProvider) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tp := provider
			if tp == nil {
				tp = otel.GetTracerProvider()
			}
			propagator := otel.GetTextMapPropagator()
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tp.Tracer(tracerName).Start(ctx, r.Method+" "+routepath.Label(r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
					attribute.String("http.request_id", httpx.RequestIDFrom(r)),
				),
			)
			sw := httpx.NewStatusWriter(w)
			defer func() {
				status := sw.Status()
				recovered := recover()
				if recovered != nil {
					status = http.StatusInternalServerError
				}
				span.SetAttributes(attribute.Int("http.response.status_code", status))
				if status >= http.StatusInternalServerError {
					span.SetStatus(codes.Error, http.StatusText(status))
				}
				span.End()
				if recovered != nil {
					panic(recovered)
				}
			}()
			next.ServeHTTP(sw, r.WithContext(ctx))
		})
	}
}
