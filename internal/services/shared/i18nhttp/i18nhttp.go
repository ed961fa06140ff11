// Package i18nhttp resolves the request language for browser surfaces.
package i18nhttp

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/foodgram/internal/platform/i18n"
	_ "github.com/louisbranch/foodgram/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "foodgram_lang"
)

// LanguageOption represents a supported language option in UI surfaces.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return platformi18n.SupportedTags()
}

// Default returns the default language tag.
func Default() language.Tag {
	return platformi18n.DefaultTag()
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTagWithDefault determines the best language tag for the request,
// returning fallback when the request states no supported preference.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTagWithDefault(r *http.Request, fallback language.Tag) (language.Tag, bool) {
	if r == nil {
		return fallback, false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := platformi18n.ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return platformi18n.MatchTags(tags, fallback), false
		}
	}

	return fallback, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// NormalizeTag coerces unknown tags to the default supported language.
func NormalizeTag(value string) language.Tag {
	if tag, ok := platformi18n.ParseTag(value); ok {
		return tag
	}
	return platformi18n.DefaultTag()
}

// SelfLabel names a language in its own language, e.g. "русский".
func SelfLabel(tag language.Tag) string {
	return display.Self.Name(tag)
}

// BuildLanguageOptions returns supported language options with active
// selection and switch URLs for the current page.
func BuildLanguageOptions(path string, rawQuery string, activeLang string) []LanguageOption {
	supported := Supported()
	options := make([]LanguageOption, 0, len(supported))
	activeTag := NormalizeTag(activeLang)
	for _, tag := range supported {
		label := strings.TrimSpace(SelfLabel(tag))
		if label == "" {
			label = tag.String()
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == activeTag,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
