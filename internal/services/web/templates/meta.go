package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// PageMeta carries the document title and the SEO / social preview tags.
type PageMeta struct {
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
}

// MetaTags renders <title> and the description/og meta tags. Empty values
// are omitted, except the title element which is always present.
func MetaTags(meta PageMeta) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<title>")
		hw.text(strings.TrimSpace(meta.Title))
		hw.raw("</title>")
		if description := strings.TrimSpace(meta.Description); description != "" {
			hw.raw(`<meta name="description"`)
			hw.attr("content", description)
			hw.raw(">")
		}
		if ogTitle := strings.TrimSpace(meta.OGTitle); ogTitle != "" {
			hw.raw(`<meta property="og:title"`)
			hw.attr("content", ogTitle)
			hw.raw(">")
		}
		if ogDescription := strings.TrimSpace(meta.OGDescription); ogDescription != "" {
			hw.raw(`<meta property="og:description"`)
			hw.attr("content", ogDescription)
			hw.raw(">")
		}
		return hw.err
	})
}
