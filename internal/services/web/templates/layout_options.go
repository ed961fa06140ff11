package templates

import (
	"github.com/louisbranch/foodgram/internal/services/web/routepath"
	"golang.org/x/text/message"
)

const mainStylesheet = "main.css"

// MainOptions configures the page shell rendered by Main.
type MainOptions struct {
	Page PageContext
	Meta PageMeta
	// Stylesheets lists page-specific static CSS files loaded after main.css.
	Stylesheets []string
}

// MainOptionsForPage builds shell options from a page context and the
// catalog keys of its title and description.
func MainOptionsForPage(page PageContext, titleKey message.Reference, descriptionKey message.Reference, stylesheets ...string) MainOptions {
	title := T(page.Loc, titleKey)
	return MainOptions{
		Page: page,
		Meta: PageMeta{
			Title:       title,
			Description: T(page.Loc, descriptionKey),
			OGTitle:     title,
		},
		Stylesheets: stylesheets,
	}
}

func (o MainOptions) stylesheetURLs() []string {
	urls := make([]string, 0, len(o.Stylesheets)+1)
	urls = append(urls, routepath.Static(mainStylesheet))
	for _, name := range o.Stylesheets {
		if name == "" || name == mainStylesheet {
			continue
		}
		urls = append(urls, routepath.Static(name))
	}
	return urls
}
