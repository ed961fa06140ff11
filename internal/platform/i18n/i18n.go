// Package i18n defines the locales the product supports.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	russian         = language.MustParse("ru-RU")
	english         = language.MustParse("en-US")
	supportedTags   = []language.Tag{russian, english}
	supportedMatch  = language.NewMatcher(supportedTags)
	defaultLanguage = russian
)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return defaultLanguage
}

// ParseTag parses value and reports whether it names a supported language.
// Base-language values such as "en" resolve to the regional tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, index, confidence := supportedMatch.Match(tag)
	if confidence < language.High {
		return language.Tag{}, false
	}
	return supportedTags[index], true
}

// MatchTags picks the best supported language for an ordered preference list.
// fallback is returned when no preference matches a supported language.
func MatchTags(tags []language.Tag, fallback language.Tag) language.Tag {
	preferred := make([]language.Tag, 0, len(tags))
	for _, tag := range tags {
		// "*" parses to the root tag and expresses no preference.
		if !tag.IsRoot() {
			preferred = append(preferred, tag)
		}
	}
	if len(preferred) == 0 {
		return fallback
	}
	_, index, confidence := supportedMatch.Match(preferred...)
	if confidence == language.No {
		return fallback
	}
	return supportedTags[index]
}
