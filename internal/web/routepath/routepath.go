// Package routepath centralizes route constants shared by modules and
// templates.
package routepath

const (
	// Home is the marketing landing page.
	Home = "/"

	// Questionnaire renders the current assessment step.
	Questionnaire = "/evaluacion"
	// QuestionnaireAnswer records the current step's answer and advances.
	QuestionnaireAnswer = "/evaluacion/responder"
	// QuestionnaireBack returns to the previous step.
	QuestionnaireBack = "/evaluacion/anterior"
	// QuestionnaireToggle flips one multi-select option membership.
	QuestionnaireToggle = "/evaluacion/alternar"

	// Results renders the report for a persisted assessment.
	Results = "/resultados"

	// AdminPrefix roots the password-gated operator surface.
	AdminPrefix = "/admin/"
	// Admin is the assessment listing dashboard.
	Admin = "/admin"
	// AdminLogin renders and processes the shared-password form.
	AdminLogin = "/admin/login"
	// AdminLogout clears the admin session.
	AdminLogout = "/admin/logout"
	// AdminResultPrefix roots per-record detail pages.
	AdminResultPrefix = "/admin/resultados/"

	// StaticPrefix serves embedded assets.
	StaticPrefix = "/static/"
)
