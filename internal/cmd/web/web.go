// Package web parses web command flags and launches the web server.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/foodgram/internal/platform/cmd"
	"github.com/louisbranch/foodgram/internal/platform/i18n"
	"github.com/louisbranch/foodgram/internal/platform/logging"
	"github.com/louisbranch/foodgram/internal/services/web"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr        string        `env:"FOODGRAM_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	AppName         string        `env:"FOODGRAM_WEB_APP_NAME"`
	DefaultLang     string        `env:"FOODGRAM_WEB_DEFAULT_LANG" envDefault:"ru-RU"`
	MetricsEnabled  bool          `env:"FOODGRAM_WEB_METRICS_ENABLED" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"FOODGRAM_WEB_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"FOODGRAM_WEB_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "Brand name shown in the page header")
	fs.StringVar(&cfg.DefaultLang, "default-lang", cfg.DefaultLang, "Language used when a request has no preference")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "Expose Prometheus metrics on /metrics")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := defaultLanguage(cfg.DefaultLang); err != nil {
		return Config{}, err
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	lang, err := defaultLanguage(cfg.DefaultLang)
	if err != nil {
		return err
	}
	logger, err := logging.New(entrypoint.ServiceWeb, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:        cfg.HTTPAddr,
			AppName:         cfg.AppName,
			DefaultLanguage: lang,
			MetricsEnabled:  cfg.MetricsEnabled,
			ShutdownTimeout: cfg.ShutdownTimeout,
			Logger:          logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		logger.Info("starting web", zap.String("addr", cfg.HTTPAddr), zap.String("default_lang", lang.String()))
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func defaultLanguage(value string) (language.Tag, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return i18n.DefaultTag(), nil
	}
	tag, ok := i18n.ParseTag(value)
	if !ok {
		return language.Tag{}, fmt.Errorf("unsupported default language %q", value)
	}
	return tag, nil
}
