// Package results renders the diagnosis page for a persisted assessment.
package results

import (
	"errors"
	"log"
	"net/http"

	"github.com/a-h/templ"

	"github.com/securelups/securelups.co/internal/assessment/storage"
	"github.com/securelups/securelups.co/internal/web/module"
	"github.com/securelups/securelups.co/internal/web/platform/sessioncookie"
	"github.com/securelups/securelups.co/internal/web/routepath"
	"github.com/securelups/securelups.co/internal/web/templates"
)

// Module owns the public results route.
type Module struct {
	results module.ResultGetter
}

// New creates the results module backed by the given result store.
func New(results module.ResultGetter) *Module {
	return &Module{results: results}
}

// ID implements module.Module.
func (m *Module) ID() string { return "results" }

// Mount implements module.Module.
func (m *Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Results, m.show)
	return module.Mount{Prefix: routepath.Results, Handler: mux}, nil
}

// show resolves the result id from the query string, falling back to the
// last-result cookie, and renders the diagnosis.
func (m *Module) show(w http.ResponseWriter, r *http.Request) {
	resultID := r.URL.Query().Get("id")
	if resultID == "" {
		resultID, _ = sessioncookie.ReadLastResult(r)
	}
	if resultID == "" {
		templ.Handler(templates.ResultsNotFoundPage(), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
		return
	}

	record, err := m.results.GetByID(r.Context(), resultID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		templ.Handler(templates.ResultsNotFoundPage(), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
	case err != nil:
		log.Printf("results: load %s: %v", resultID, err)
		templ.Handler(templates.ResultsErrorPage(), templ.WithStatus(http.StatusInternalServerError)).ServeHTTP(w, r)
	default:
		templ.Handler(templates.ResultsPage(templates.NewResultView(record))).ServeHTTP(w, r)
	}
}
