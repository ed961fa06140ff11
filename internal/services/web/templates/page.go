package templates

import "strings"

const appNameKey = "core.app_name"

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	// AppName overrides the localized brand name when set.
	AppName string
}

func (p PageContext) appName() string {
	if name := strings.TrimSpace(p.AppName); name != "" {
		return name
	}
	return T(p.Loc, appNameKey)
}

func (p PageContext) lang() string {
	if lang := strings.TrimSpace(p.Lang); lang != "" {
		return lang
	}
	return "ru-RU"
}
