package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/foodgram/internal/services/shared/i18nhttp"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
)

func russianPage(path string) PageContext {
	return PageContext{
		Lang:        "ru-RU",
		Loc:         i18nhttp.Printer(language.MustParse("ru-RU")),
		CurrentPath: path,
	}
}

func englishPage(path string) PageContext {
	return PageContext{
		Lang:        "en-US",
		Loc:         i18nhttp.Printer(language.MustParse("en-US")),
		CurrentPath: path,
	}
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	return b.String()
}

func parseHTML(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return out
}

func element(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attrValue(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	for _, text := range findAll(n, func(n *html.Node) bool { return n.Type == html.TextNode }) {
		b.WriteString(text.Data)
	}
	return b.String()
}

func metaContent(doc *html.Node, key, value string) (string, bool) {
	for _, meta := range findAll(doc, element("meta")) {
		if attrValue(meta, key) == value {
			return attrValue(meta, "content"), true
		}
	}
	return "", false
}
