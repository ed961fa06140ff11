// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "strings"

const (
	Root         = "/"
	Technologies = "/technologies"
	About        = "/about"
	Health       = "/up"
	Metrics      = "/metrics"
	StaticPrefix = "/static/"
)

// Static returns the public URL for an embedded static asset.
func Static(name string) string {
	return StaticPrefix + name
}

// Label returns a bounded label for metrics: the canonical route for known
// paths, "static" for assets, and "other" for everything else.
func Label(path string) string {
	switch path {
	case Root, Technologies, About, Health, Metrics:
		return path
	}
	if strings.HasPrefix(path, StaticPrefix) {
		return "static"
	}
	return "other"
}
