package templates

import (
	"fmt"

	"github.com/louisbranch/foodgram/internal/platform/i18n/catalog"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for web templ components.
// *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string. Without a localizer the base-locale catalog
// message is used, and unknown keys fall back to the key itself.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	keyString, ok := key.(string)
	if !ok {
		return ""
	}
	format := keyString
	if msg, found := catalog.Default().Message(catalog.BaseLocale, keyString); found {
		format = msg
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}
