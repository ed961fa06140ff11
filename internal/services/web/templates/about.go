package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/foodgram/internal/services/web/routepath"
)

// AboutPage renders the project description page.
func AboutPage(p PageContext) templ.Component {
	opts := MainOptionsForPage(p, "web.about.page_title", "web.about.meta_description", technologiesStylesheet)
	return shell(opts, fragments(
		Title(T(p.Loc, "web.about.title")),
		aboutContent(p),
	))
}

func aboutContent(p PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<h2 class="` + ClassAboutSubtitle + `">`)
		hw.text(T(p.Loc, "web.about.subtitle"))
		hw.raw(`</h2><p class="` + ClassAboutText + `">`)
		hw.text(T(p.Loc, "web.about.body"))
		hw.raw(`</p><p><a class="` + ClassAboutLink + `"`)
		hw.attr("href", routepath.Technologies)
		hw.raw(">")
		hw.text(T(p.Loc, "web.about.technologies_link"))
		hw.raw("</a></p>")
		return hw.err
	})
}
