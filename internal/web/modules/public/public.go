// Package public serves the marketing landing page.
package public

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/securelups/securelups.co/internal/web/content"
	"github.com/securelups/securelups.co/internal/web/module"
	"github.com/securelups/securelups.co/internal/web/routepath"
	"github.com/securelups/securelups.co/internal/web/templates"
)

// Module renders the public marketing surface.
type Module struct{}

// New creates the public module.
func New() *Module { return &Module{} }

// ID implements module.Module.
func (m *Module) ID() string { return "public" }

// Mount implements module.Module.
func (m *Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Home, m.home)
	return module.Mount{Prefix: routepath.Home, Handler: mux}, nil
}

func (m *Module) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Home {
		http.NotFound(w, r)
		return
	}
	view := templates.HomeView{
		Services:     content.Services(),
		Workshops:    content.Workshops(),
		Plans:        content.Plans(),
		Testimonials: content.Testimonials(),
		FAQs:         content.FAQs(),
	}
	templ.Handler(templates.HomePage(view)).ServeHTTP(w, r)
}
