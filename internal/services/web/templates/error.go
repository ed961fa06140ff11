package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/foodgram/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey = "web.error.page_title_server_error"
	appErrorHeadingNotFoundKey    = "web.error.title_not_found"
	appErrorHeadingServerErrKey   = "web.error.title_server_error"
	appErrorMessageNotFoundKey    = "web.error.message_not_found"
	appErrorMessageServerErrKey   = "web.error.message_server_error"
	appErrorBackTextKey           = "web.error.action_back"
	appErrorMetaDescriptionKey    = "core.meta.description"
)

// AppErrorPageTitle returns the browser page title for error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// ErrorPage renders a 404 or 500 page inside the shell. Any status other
// than 404 renders as a server error.
func ErrorPage(p PageContext, statusCode int) templ.Component {
	title := AppErrorPageTitle(statusCode, p.Loc)
	opts := MainOptions{
		Page: p,
		Meta: PageMeta{
			Title:       title,
			Description: T(p.Loc, appErrorMetaDescriptionKey),
		},
	}
	return shell(opts, fragments(
		Title(appErrorHeading(statusCode, p.Loc)),
		errorState(statusCode, p.Loc),
	))
}

func errorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<p class="` + ClassErrorMessage + `">`)
		hw.text(appErrorMessage(statusCode, loc))
		hw.raw(`</p><p><a`)
		hw.attr("href", routepath.Technologies)
		hw.raw(">")
		hw.text(T(loc, appErrorBackTextKey))
		hw.raw("</a></p>")
		return hw.err
	})
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFoundKey)
	}
	return T(loc, appErrorHeadingServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
