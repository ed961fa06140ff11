package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so component bodies read as
// straight-line markup.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + `="`)
	hw.text(value)
	hw.raw(`"`)
}

func (hw *htmlWriter) render(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// children renders the component's children, if any, and clears them from
// ctx so nested components do not render them twice.
func (hw *htmlWriter) children(ctx context.Context) {
	children := templ.GetChildren(ctx)
	hw.render(templ.ClearChildren(ctx), children)
}

// withChildren renders parent with child as its children.
func withChildren(parent templ.Component, child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return parent.Render(templ.WithChildren(ctx, child), w)
	})
}

// fragments renders components in order.
func fragments(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		for _, c := range components {
			hw.render(ctx, c)
		}
		return hw.err
	})
}
