package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/foodgram/internal/services/shared/i18nhttp"
	"github.com/louisbranch/foodgram/internal/services/web/routepath"
)

type navItem struct {
	path     string
	labelKey string
}

var navItems = []navItem{
	{path: routepath.About, labelKey: "core.nav.about"},
	{path: routepath.Technologies, labelKey: "core.nav.technologies"},
}

// Main renders the page shell: document head, header with navigation, the
// children inside <main>, and the footer.
func Main(opts MainOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		page := opts.Page
		hw := &htmlWriter{w: w}
		hw.raw("<!doctype html><html")
		hw.attr("lang", page.lang())
		hw.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.render(ctx, MetaTags(opts.Meta))
		for _, href := range opts.stylesheetURLs() {
			hw.raw(`<link rel="stylesheet"`)
			hw.attr("href", href)
			hw.raw(">")
		}
		hw.raw(`</head><body><div class="page">`)
		hw.render(ctx, header(page))
		hw.raw(`<main class="main">`)
		hw.children(ctx)
		hw.raw(`</main><footer class="footer"><div class="footer__inner">`)
		hw.text(T(page.Loc, "core.footer.copyright"))
		hw.raw(`</div></footer></div></body></html>`)
		return hw.err
	})
}

func header(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<header class="header"><div class="header__inner"><a class="header__brand"`)
		hw.attr("href", routepath.Root)
		hw.raw(">")
		hw.text(page.appName())
		hw.raw(`</a><nav`)
		hw.attr("aria-label", T(page.Loc, "core.nav.label"))
		hw.raw(`><ul class="nav">`)
		current := strings.TrimSpace(page.CurrentPath)
		for _, item := range navItems {
			hw.raw(`<li><a class="nav__link"`)
			hw.attr("href", item.path)
			if item.path == current {
				hw.raw(` aria-current="page"`)
			}
			hw.raw(">")
			hw.text(T(page.Loc, item.labelKey))
			hw.raw("</a></li>")
		}
		hw.raw(`</ul></nav><ul class="lang-switch">`)
		for _, option := range i18nhttp.BuildLanguageOptions(current, page.CurrentQuery, page.lang()) {
			hw.raw(`<li><a class="lang-switch__link"`)
			hw.attr("href", option.URL)
			hw.attr("hreflang", option.Tag)
			if option.Active {
				hw.raw(` aria-current="true"`)
			}
			hw.raw(">")
			hw.text(option.Label)
			hw.raw("</a></li>")
		}
		hw.raw(`</ul></div></header>`)
		return hw.err
	})
}

// Container constrains its children to the content width.
func Container() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="container">`)
		hw.children(ctx)
		hw.raw(`</div>`)
		return hw.err
	})
}

// Title renders the page heading. Extra classes are appended to "title".
func Title(text string, classes ...string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<h1")
		hw.attr("class", joinClasses(ClassTitle, classes...))
		hw.raw(">")
		hw.text(text)
		hw.raw("</h1>")
		return hw.err
	})
}

func joinClasses(base string, extra ...string) string {
	parts := make([]string, 0, len(extra)+1)
	parts = append(parts, base)
	for _, class := range extra {
		if class = strings.TrimSpace(class); class != "" {
			parts = append(parts, class)
		}
	}
	return strings.Join(parts, " ")
}

// shell composes Main and Container around content.
func shell(opts MainOptions, content templ.Component) templ.Component {
	return withChildren(Main(opts), withChildren(Container(), content))
}
