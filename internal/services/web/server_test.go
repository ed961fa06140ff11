package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = "127.0.0.1:0"
	}
	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return server
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{HTTPAddr: "  "}); err == nil {
		t.Fatal("expected address error")
	}
}

func TestServerServesTechnologiesThroughMiddleware(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	recorder := tracetest.NewSpanRecorder()
	server := newTestServer(t, Config{
		Logger:         zap.New(core),
		TracerProvider: trace.NewTracerProvider(trace.WithSpanProcessor(recorder)),
	})

	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/technologies", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "Технологии") {
		t.Fatal("expected technologies heading")
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
	if got := len(logs.FilterMessage("http request").All()); got != 1 {
		t.Fatalf("access log entries = %d, want 1", got)
	}
	if got := len(recorder.Ended()); got != 1 {
		t.Fatalf("spans = %d, want 1", got)
	}
}

func TestServerServesStaticStylesheet(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, Config{})
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/technologies.css", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), ".technologies__item") {
		t.Fatal("expected technologies stylesheet")
	}
	if !strings.HasPrefix(rr.Header().Get("Content-Type"), "text/css") {
		t.Fatalf("Content-Type = %q", rr.Header().Get("Content-Type"))
	}
}

func TestServerMetricsToggle(t *testing.T) {
	t.Parallel()

	enabled := newTestServer(t, Config{MetricsEnabled: true})
	enabled.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/technologies", nil))
	rr := httptest.NewRecorder()
	enabled.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `foodgram_web_http_requests_total{method="GET",route="/technologies",status="200"} 1`) {
		t.Fatalf("expected technologies counter, got %q", rr.Body.String())
	}

	disabled := newTestServer(t, Config{})
	rr = httptest.NewRecorder()
	disabled.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("disabled metrics status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, Config{ShutdownTimeout: time.Second})
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/up")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health = %d %q", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServeRejectsMissingInputs(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, Config{})
	if err := server.Serve(context.Background(), nil); err == nil {
		t.Fatal("expected listener error")
	}
	var nilServer *Server
	if err := nilServer.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected nil server error")
	}
	if err := nilServer.Close(); err != nil {
		t.Fatalf("nil Close() = %v", err)
	}
}
