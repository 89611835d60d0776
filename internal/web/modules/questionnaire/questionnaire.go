// Package questionnaire drives the step-by-step self-assessment flow: one
// question per page, server-held session state, and submission into the
// result store on the final step.
package questionnaire

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	"github.com/securelups/securelups.co/internal/assessment/form"
	"github.com/securelups/securelups.co/internal/assessment/scoring"
	"github.com/securelups/securelups.co/internal/web/module"
	"github.com/securelups/securelups.co/internal/web/platform/flash"
	"github.com/securelups/securelups.co/internal/web/platform/htmx"
	"github.com/securelups/securelups.co/internal/web/platform/sessioncookie"
	"github.com/securelups/securelups.co/internal/web/routepath"
	"github.com/securelups/securelups.co/internal/web/session"
	"github.com/securelups/securelups.co/internal/web/templates"
)

// Module owns the questionnaire routes.
type Module struct {
	results  module.ResultCreator
	registry *session.Registry
}

// New creates the questionnaire module backed by the given result store.
func New(results module.ResultCreator) *Module {
	return &Module{
		results:  results,
		registry: session.NewRegistry(),
	}
}

// ID implements module.Module.
func (m *Module) ID() string { return "questionnaire" }

// Mount implements module.Module.
func (m *Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Questionnaire, m.step)
	mux.HandleFunc("POST "+routepath.QuestionnaireAnswer, m.answer)
	mux.HandleFunc("POST "+routepath.QuestionnaireBack, m.back)
	mux.HandleFunc("POST "+routepath.QuestionnaireToggle, m.toggle)
	return module.Mount{Prefix: routepath.Questionnaire, Handler: mux}, nil
}

// step renders the current question, starting a fresh session when the
// browser has none.
func (m *Module) step(w http.ResponseWriter, r *http.Request) {
	_, s, ok := m.lookup(r)
	if !ok {
		sessionID, created := m.registry.Create()
		sessioncookie.Write(w, sessionID)
		s = created
	}

	view := m.stepView(s)
	if notice, ok := flash.ReadAndClear(w, r); ok {
		view.Notice = &notice
	}
	templ.Handler(templates.QuestionnairePage(view)).ServeHTTP(w, r)
}

// answer records the submitted value for the current question and advances.
// Completing the last step persists the result and redirects to the report.
func (m *Module) answer(w http.ResponseWriter, r *http.Request) {
	sessionID, s, ok := m.lookup(r)
	if !ok {
		http.Redirect(w, r, routepath.Questionnaire, http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	q := s.Question()
	s.SetValue(q.ID, submittedValue(q, r))

	switch s.Next() {
	case form.NextBlocked, form.NextAdvanced:
		http.Redirect(w, r, routepath.Questionnaire, http.StatusSeeOther)
	case form.NextCompleted:
		m.submit(w, r, sessionID, s)
	}
}

// submit persists a completed session. On store failure the session is kept
// so the visitor can retry without losing answers.
func (m *Module) submit(w http.ResponseWriter, r *http.Request, sessionID string, s *form.Session) {
	answers := s.Answers()
	score := scoring.Score(answers)
	resultID, err := m.results.Create(r.Context(), answers, score)
	if err != nil {
		log.Printf("questionnaire: persist result: %v", err)
		flash.Write(w, flash.NoticeError("No pudimos guardar tu evaluación. Inténtalo de nuevo."))
		http.Redirect(w, r, routepath.Questionnaire, http.StatusSeeOther)
		return
	}

	m.registry.Delete(sessionID)
	sessioncookie.Clear(w)
	sessioncookie.WriteLastResult(w, resultID)
	http.Redirect(w, r, routepath.Results+"?id="+resultID, http.StatusSeeOther)
}

// back steps to the previous question without touching stored answers.
func (m *Module) back(w http.ResponseWriter, r *http.Request) {
	if _, s, ok := m.lookup(r); ok {
		s.Previous()
	}
	http.Redirect(w, r, routepath.Questionnaire, http.StatusSeeOther)
}

// toggle updates one multi-select option. The click posts the whole form, so
// the checked boxes carry the desired state: the clicked option is selected
// exactly when it appears among them. Replaying the same request is a no-op.
func (m *Module) toggle(w http.ResponseWriter, r *http.Request) {
	_, s, ok := m.lookup(r)
	if !ok {
		http.Redirect(w, r, routepath.Questionnaire, http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	q := s.Question()
	option := r.PostFormValue("alternada")
	selected := false
	for _, checked := range r.PostForm["opcion"] {
		if checked == option {
			selected = true
			break
		}
	}
	s.Toggle(q.ID, option, selected)

	if htmx.IsRequest(r) {
		templ.Handler(templates.QuestionFragment(m.stepView(s))).ServeHTTP(w, r)
		return
	}
	http.Redirect(w, r, routepath.Questionnaire, http.StatusSeeOther)
}

func (m *Module) lookup(r *http.Request) (string, *form.Session, bool) {
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return "", nil, false
	}
	s, ok := m.registry.Get(sessionID)
	return sessionID, s, ok
}

func (m *Module) stepView(s *form.Session) templates.StepView {
	q := s.Question()
	return templates.StepView{
		Question: q,
		Answer:   s.Answers().Value(q.ID),
		Step:     s.Step(),
		Total:    form.QuestionCount(),
		Progress: s.Progress(),
		Invalid:  s.Touched(q.ID) && s.Invalid(q.ID),
	}
}

// submittedValue reads the posted answer in the shape the question expects.
func submittedValue(q form.Question, r *http.Request) form.Value {
	if q.Kind == form.KindMultiSelect {
		return form.Value{Options: r.PostForm["opcion"]}
	}
	return form.Value{Text: r.PostFormValue("valor")}
}
