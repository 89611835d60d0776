// Package app composes the feature modules into the web server.
package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/securelups/securelups.co/internal/web/module"
	"github.com/securelups/securelups.co/internal/web/routepath"
	"github.com/securelups/securelups.co/internal/web/static"
)

// Compose builds the root HTTP handler from the feature modules. Each module
// owns one route prefix; duplicate prefixes are a wiring error.
func Compose(modules ...module.Module) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, err := feature.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		prefix := strings.TrimSpace(mount.Prefix)
		if !strings.HasPrefix(prefix, "/") {
			return nil, fmt.Errorf("module %q has invalid prefix %q", feature.ID(), mount.Prefix)
		}
		if mount.Handler == nil {
			return nil, fmt.Errorf("module %q has no handler", feature.ID())
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()

		root.Handle(prefix, mount.Handler)
		if prefix != "/" && !strings.HasSuffix(prefix, "/") {
			root.Handle(prefix+"/", mount.Handler)
		}
	}

	root.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS)))
	return root, nil
}
