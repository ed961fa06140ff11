package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultTagIsRussian(t *testing.T) {
	if got := DefaultTag().String(); got != "ru-RU" {
		t.Fatalf("DefaultTag() = %q, want %q", got, "ru-RU")
	}
	if got := SupportedTags()[0].String(); got != "ru-RU" {
		t.Fatalf("SupportedTags()[0] = %q, want %q", got, "ru-RU")
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	tags := SupportedTags()
	tags[0] = language.Japanese
	if got := SupportedTags()[0].String(); got != "ru-RU" {
		t.Fatalf("SupportedTags()[0] = %q after mutation, want %q", got, "ru-RU")
	}
}

func TestParseTag(t *testing.T) {
	cases := map[string]string{
		"ru-RU": "ru-RU",
		"ru":    "ru-RU",
		"en":    "en-US",
		"en-US": "en-US",
	}
	for input, want := range cases {
		got, ok := ParseTag(input)
		if !ok {
			t.Fatalf("ParseTag(%q) not ok", input)
		}
		if got.String() != want {
			t.Fatalf("ParseTag(%q) = %q, want %q", input, got.String(), want)
		}
	}
	for _, input := range []string{"", "  ", "!!", "ja"} {
		if _, ok := ParseTag(input); ok {
			t.Fatalf("ParseTag(%q) ok, want rejection", input)
		}
	}
}

func TestMatchTags(t *testing.T) {
	if got := MatchTags(nil, english).String(); got != "en-US" {
		t.Fatalf("MatchTags(nil) = %q, want en-US", got)
	}
	got := MatchTags([]language.Tag{language.Japanese, language.MustParse("en-GB")}, russian)
	if got.String() != "en-US" {
		t.Fatalf("MatchTags() = %q, want en-US", got.String())
	}
}

func TestMatchTagsUnsupportedUsesFallback(t *testing.T) {
	tags := []language.Tag{language.MustParse("de-DE"), language.French}
	if got := MatchTags(tags, english).String(); got != "en-US" {
		t.Fatalf("MatchTags(de-DE, fr) = %q, want fallback en-US", got)
	}
	if got := MatchTags(tags, russian).String(); got != "ru-RU" {
		t.Fatalf("MatchTags(de-DE, fr) = %q, want fallback ru-RU", got)
	}
	if got := MatchTags([]language.Tag{language.Und}, english).String(); got != "en-US" {
		t.Fatalf("MatchTags(und) = %q, want fallback en-US", got)
	}
}
