package public

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/foodgram/internal/services/shared/i18nhttp"
	apperrors "github.com/louisbranch/foodgram/internal/services/web/platform/errors"
	"github.com/louisbranch/foodgram/internal/services/web/platform/httpx"
	"github.com/louisbranch/foodgram/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/foodgram/internal/services/web/templates"
	"go.uber.org/zap"
)

type handlers struct {
	options Options
}

func newHandlers(options Options) handlers {
	return handlers{options: normalizeOptions(options)}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Technologies, http.StatusFound)
}

func (h handlers) handleTechnologies(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(w, r)
	h.writePage(w, r, page, http.StatusOK, webtemplates.TechnologiesPage(page))
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(w, r)
	h.writePage(w, r, page, http.StatusOK, webtemplates.AboutPage(page))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteHTML(w, http.StatusOK, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(w, r)
	h.writeError(w, r, page, apperrors.E(apperrors.KindNotFound, "page not found"))
}

// pageContext resolves the request language, persisting an explicit ?lang=
// choice in a cookie.
func (h handlers) pageContext(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	tag, persist := i18nhttp.ResolveTagWithDefault(r, h.options.DefaultLanguage)
	if persist {
		i18nhttp.SetLanguageCookie(w, tag)
	}
	return webtemplates.PageContext{
		Lang:         tag.String(),
		Loc:          i18nhttp.Printer(tag),
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
		AppName:      h.options.AppName,
	}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, status int, component templ.Component) {
	if err := httpx.WriteComponent(w, r, status, component); err != nil {
		h.options.Logger.Error("render page",
			zap.String("path", r.URL.Path),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err),
		)
		h.writeError(w, r, page, err)
	}
}

// writeError renders the error page for err. If that also fails, a plain
// text response is written instead.
func (h handlers) writeError(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, err error) {
	status := apperrors.HTTPStatus(err)
	if renderErr := httpx.WriteComponent(w, r, status, webtemplates.ErrorPage(page, status)); renderErr != nil {
		h.options.Logger.Error("render error page", zap.Int("status", status), zap.Error(renderErr))
		http.Error(w, apperrors.PublicMessage(err), status)
	}
}
