package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/foodgram/internal/platform/logging"
	"github.com/louisbranch/foodgram/internal/platform/timeouts"
	"github.com/louisbranch/foodgram/internal/services/web/composition"
	"github.com/louisbranch/foodgram/internal/services/web/modules"
	"github.com/louisbranch/foodgram/internal/services/web/modules/public"
	"github.com/louisbranch/foodgram/internal/services/web/platform/httpx"
	"github.com/louisbranch/foodgram/internal/services/web/platform/metrics"
	"github.com/louisbranch/foodgram/internal/services/web/platform/observability"
	"github.com/louisbranch/foodgram/internal/services/web/routepath"
	"github.com/louisbranch/foodgram/internal/services/web/static"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// AppName overrides the localized brand name.
	AppName         string
	DefaultLanguage language.Tag
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
	Logger          *zap.Logger
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr        string
	httpServer      *http.Server
	handler         http.Handler
	shutdownTimeout time.Duration
	logger          *zap.Logger
}

// NewServer builds the handler graph for cfg without binding a socket.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := logging.OrNop(cfg.Logger)

	input := composition.ComposeInput{
		Modules: modules.DefaultPublicModules(modules.Dependencies{
			Public: public.Options{
				AppName:         cfg.AppName,
				DefaultLanguage: cfg.DefaultLanguage,
				Logger:          logger,
			},
		}),
		StaticFS: static.FS,
	}

	var httpMetrics *metrics.HTTP
	if cfg.MetricsEnabled {
		var err error
		httpMetrics, err = metrics.New(func(r *http.Request) string { return routepath.Label(r.URL.Path) })
		if err != nil {
			return nil, fmt.Errorf("init metrics: %w", err)
		}
		input.Metrics = httpMetrics.Handler()
	}

	mux, err := composition.ComposeAppHandler(input)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}

	middleware := []httpx.Middleware{
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	}
	if httpMetrics != nil {
		middleware = append(middleware, httpMetrics.Middleware())
	}
	middleware = append(middleware, observability.Tracing(cfg.TracerProvider))
	handler := httpx.Chain(mux, middleware...)

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			IdleTimeout:       timeouts.Idle,
		},
		handler:         handler,
		shutdownTimeout: timeouts.OrDefault(cfg.ShutdownTimeout, timeouts.Shutdown),
		logger:          logger,
	}, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	if s == nil {
		return http.NotFoundHandler()
	}
	return s.handler
}

// ListenAndServe binds the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is done, then drains
// in-flight requests within the shutdown timeout.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", zap.String("addr", listener.Addr().String()))
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.logger.Info("web stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the server immediately and flushes the logger.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	err := s.httpServer.Close()
	_ = s.logger.Sync()
	return err
}
