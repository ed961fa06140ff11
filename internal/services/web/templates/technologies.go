package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	technologiesPageTitleKey       = "web.technologies.page_title"
	technologiesMetaDescriptionKey = "web.technologies.meta_description"
	technologiesTitleKey           = "web.technologies.title"
	technologiesSubtitleKey        = "web.technologies.subtitle"
)

// technologyNames are proper nouns and are not localized.
var technologyNames = [...]string{
	"Python 3.9",
	"Django 3.2",
	"Django REST Framework",
	"Djoser",
	"Simple JWT",
	"PostgreSQL",
	"Docker",
	"Docker Compose",
	"GitHub Actions",
	"Nginx",
}

// TechnologyNames returns the technologies used by the project backend, in
// display order.
func TechnologyNames() []string {
	out := make([]string, len(technologyNames))
	copy(out, technologyNames[:])
	return out
}

// TechnologiesPage renders the "Технологии" page.
func TechnologiesPage(p PageContext) templ.Component {
	opts := MainOptionsForPage(p, technologiesPageTitleKey, technologiesMetaDescriptionKey, technologiesStylesheet)
	return shell(opts, fragments(
		Title(T(p.Loc, technologiesTitleKey), ClassTechnologiesTitle),
		technologiesContent(p),
	))
}

func technologiesContent(p PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="` + ClassTechnologiesContent + `"><div><h2 class="` + ClassTechnologiesSubtitle + `">`)
		hw.text(T(p.Loc, technologiesSubtitleKey))
		hw.raw(`</h2><div class="` + ClassTechnologiesText + `"><ul class="` + ClassTechnologiesList + `">`)
		for _, name := range TechnologyNames() {
			hw.raw(`<li class="` + ClassTechnologiesItem + `">`)
			hw.text(name)
			hw.raw("</li>")
		}
		hw.raw("</ul></div></div></div>")
		return hw.err
	})
}
