package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/foodgram/internal/services/web/platform/httpx"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func routeByPath(r *http.Request) string {
	if r.URL.Path == "/technologies" {
		return "/technologies"
	}
	return "other"
}

func TestMiddlewareCountsRequestsByRouteAndStatus(t *testing.T) {
	t.Parallel()

	m, err := New(routeByPath)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	h := m.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/technologies" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	for _, path := range []string{"/technologies", "/technologies", "/nope", "/also-nope"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.requests.WithLabelValues("/technologies", "GET", "200")); got != 2 {
		t.Fatalf("technologies count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("other", "GET", "404")); got != 2 {
		t.Fatalf("other count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Fatalf("in flight = %v, want 0", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	t.Parallel()

	m, err := New(nil)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	m.Middleware()(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"foodgram_web_http_requests_total",
		`route="other"`,
		"foodgram_web_http_request_duration_seconds",
		"go_goroutines",
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("metrics output missing %q", marker)
		}
	}
}

func TestMiddlewareCountsPanickingRequestAsServerError(t *testing.T) {
	t.Parallel()

	m, err := New(routeByPath)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), httpx.RecoverPanic(nil), m.Middleware())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/technologies", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("/technologies", "GET", "500")); got != 1 {
		t.Fatalf("500 count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Fatalf("in flight = %v, want 0", got)
	}
}
