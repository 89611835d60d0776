// Package admin serves the password-gated operator dashboard: login, the
// results listing with tier aggregates, and per-record detail.
package admin

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/securelups/securelups.co/internal/assessment/scoring"
	"github.com/securelups/securelups.co/internal/assessment/storage"
	"github.com/securelups/securelups.co/internal/web/adminauth"
	"github.com/securelups/securelups.co/internal/web/module"
	"github.com/securelups/securelups.co/internal/web/routepath"
	"github.com/securelups/securelups.co/internal/web/templates"
)

// Store is the persistence surface the dashboard needs.
type Store interface {
	module.ResultGetter
	module.ResultLister
	module.ResultEmailFinder
}

// Module owns the /admin routes.
type Module struct {
	gate    adminauth.Gate
	results Store
}

// New creates the admin module. When gate is not enabled every admin route
// answers not found.
func New(gate adminauth.Gate, results Store) *Module {
	return &Module{gate: gate, results: results}
}

// ID implements module.Module.
func (m *Module) ID() string { return "admin" }

// Mount implements module.Module.
func (m *Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.AdminLogin, m.enabled(m.loginForm))
	mux.HandleFunc("POST "+routepath.AdminLogin, m.enabled(m.login))
	mux.HandleFunc("POST "+routepath.AdminLogout, m.enabled(m.logout))
	mux.HandleFunc("GET "+routepath.Admin, m.enabled(m.requireAuth(m.dashboard)))
	mux.HandleFunc("GET "+routepath.AdminResultPrefix+"{id}", m.enabled(m.requireAuth(m.detail)))
	return module.Mount{Prefix: routepath.Admin, Handler: mux}, nil
}

// enabled hides the whole surface when no admin password is configured.
func (m *Module) enabled(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.gate.Enabled() {
			http.NotFound(w, r)
			return
		}
		next(w, r)
	}
}

// requireAuth sends unauthenticated requests to the login form.
func (m *Module) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.gate.Authenticated(r) {
			http.Redirect(w, r, routepath.AdminLogin, http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func (m *Module) loginForm(w http.ResponseWriter, r *http.Request) {
	if m.gate.Authenticated(r) {
		http.Redirect(w, r, routepath.Admin, http.StatusSeeOther)
		return
	}
	templ.Handler(templates.AdminLoginPage("")).ServeHTTP(w, r)
}

func (m *Module) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if !m.gate.Check(r.PostFormValue("password")) {
		templ.Handler(templates.AdminLoginPage("Contraseña incorrecta"), templ.WithStatus(http.StatusUnauthorized)).ServeHTTP(w, r)
		return
	}

	token, err := m.gate.IssueToken()
	if err != nil {
		log.Printf("admin: issue session token: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	adminauth.WriteSession(w, token)
	http.Redirect(w, r, routepath.Admin, http.StatusSeeOther)
}

func (m *Module) logout(w http.ResponseWriter, r *http.Request) {
	adminauth.ClearSession(w)
	http.Redirect(w, r, routepath.AdminLogin, http.StatusSeeOther)
}

// dashboard lists every assessment, or only those for the contact email in
// the optional ?email= filter.
func (m *Module) dashboard(w http.ResponseWriter, r *http.Request) {
	filter := strings.TrimSpace(r.URL.Query().Get("email"))
	var (
		records []storage.Record
		err     error
	)
	if filter != "" {
		records, err = m.results.GetByEmail(r.Context(), filter)
	} else {
		records, err = m.results.GetAll(r.Context())
	}
	if err != nil {
		log.Printf("admin: list results: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	view := buildDashboard(records)
	view.Filter = filter
	templ.Handler(templates.AdminDashboardPage(view)).ServeHTTP(w, r)
}

func (m *Module) detail(w http.ResponseWriter, r *http.Request) {
	resultID := strings.TrimSpace(r.PathValue("id"))
	record, err := m.results.GetByID(r.Context(), resultID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		templ.Handler(templates.AdminNotFoundPage(), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
	case err != nil:
		log.Printf("admin: load %s: %v", resultID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		templ.Handler(templates.AdminDetailPage(templates.NewResultView(record))).ServeHTTP(w, r)
	}
}

// buildDashboard folds the stored records into the listing view. Records
// arrive newest first and keep that order.
func buildDashboard(records []storage.Record) templates.DashboardView {
	view := templates.DashboardView{Total: len(records)}
	for _, record := range records {
		tier := scoring.TierForScore(record.Score)
		switch tier {
		case scoring.TierCritico:
			view.Criticos++
		case scoring.TierBajo:
			view.Bajos++
		case scoring.TierRegular:
			view.Regulares++
		}
		view.Rows = append(view.Rows, templates.AdminRow{
			ID:        record.ID,
			Empresa:   record.Answers.Empresa,
			Email:     record.Answers.Email,
			Sector:    record.Answers.Sector,
			Score:     record.Score,
			Tier:      tier,
			CreatedAt: record.CreatedAt,
		})
	}
	return view
}
