// Package composition assembles web modules into one HTTP handler.
package composition

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	module "github.com/louisbranch/foodgram/internal/services/web/module"
	"github.com/louisbranch/foodgram/internal/services/web/platform/httpx"
	"github.com/louisbranch/foodgram/internal/services/web/routepath"
)

// ComposeInput describes the contracts needed to compose the application mux.
type ComposeInput struct {
	Modules []module.Module
	// StaticFS is served under routepath.StaticPrefix when set.
	StaticFS fs.FS
	// Metrics is served at routepath.Metrics when set.
	Metrics http.Handler
}

// ComposeAppHandler mounts static assets, metrics and every module on one mux.
func ComposeAppHandler(input ComposeInput) (http.Handler, error) {
	mux := http.NewServeMux()
	if input.StaticFS != nil {
		mux.Handle(routepath.StaticPrefix, staticFiles(input.StaticFS))
	}
	if input.Metrics != nil {
		mux.Handle(routepath.Metrics, httpx.AllowMethods(http.MethodGet, http.MethodHead)(input.Metrics))
	}

	seen := map[string]string{}
	for _, m := range input.Modules {
		if m == nil {
			continue
		}
		mount, err := m.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %s: %w", m.ID(), err)
		}
		prefix := strings.TrimSpace(mount.Prefix)
		if prefix == "" {
			return nil, fmt.Errorf("mount module %s: prefix is required", m.ID())
		}
		if mount.Handler == nil {
			return nil, fmt.Errorf("mount module %s: handler is required", m.ID())
		}
		if owner, exists := seen[prefix]; exists {
			return nil, fmt.Errorf("mount module %s: prefix %q already mounted by %s", m.ID(), prefix, owner)
		}
		seen[prefix] = m.ID()
		mux.Handle(prefix, mount.Handler)
	}
	return mux, nil
}

// staticFiles serves regular files from fsys under routepath.StaticPrefix.
// Directories are reported as not found instead of listed.
func staticFiles(fsys fs.FS) http.Handler {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(fsys))
	return httpx.AllowMethods(http.MethodGet, http.MethodHead)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, routepath.StaticPrefix)
		if name == "" || strings.HasSuffix(name, "/") {
			http.NotFound(w, r)
			return
		}
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}))
}
