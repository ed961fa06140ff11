// Package public serves the unauthenticated informational pages.
package public

import (
	"net/http"
	"strings"

	"github.com/louisbranch/foodgram/internal/platform/logging"
	"github.com/louisbranch/foodgram/internal/services/shared/i18nhttp"
	module "github.com/louisbranch/foodgram/internal/services/web/module"
	"github.com/louisbranch/foodgram/internal/services/web/platform/httpx"
	"github.com/louisbranch/foodgram/internal/services/web/routepath"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Options configures the public module.
type Options struct {
	// AppName overrides the localized brand name in the page header.
	AppName string
	// DefaultLanguage is used when a request carries no language hint.
	DefaultLanguage language.Tag
	Logger          *zap.Logger
}

// Module provides the root, about, technologies and health routes.
type Module struct {
	options Options
}

// New returns the public module.
func New(options Options) Module {
	return Module{options: options}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "public"
}

// Mount wires public routes under the root prefix. Unmatched paths render
// the not-found page.
func (m Module) Mount() (module.Mount, error) {
	h := newHandlers(m.options)
	mux := http.NewServeMux()
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	readOnly := httpx.AllowMethods(http.MethodGet, http.MethodHead)
	mux.Handle(routepath.Technologies, readOnly(http.HandlerFunc(h.handleTechnologies)))
	mux.Handle(routepath.About, readOnly(http.HandlerFunc(h.handleAbout)))
	mux.Handle(routepath.Health, readOnly(http.HandlerFunc(h.handleHealth)))
	mux.Handle(routepath.Root+"{$}", readOnly(http.HandlerFunc(h.handleRoot)))
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}

func normalizeOptions(options Options) Options {
	options.AppName = strings.TrimSpace(options.AppName)
	if options.DefaultLanguage.IsRoot() {
		options.DefaultLanguage = i18nhttp.Default()
	}
	options.Logger = logging.OrNop(options.Logger)
	return options
}
