// Package report turns a stored assessment into its user-facing diagnosis:
// tier presentation, narrative paragraph, and prioritized recommendations.
// Everything here is a pure derivation from the answers and score.
package report

import (
	"github.com/securelups/securelups.co/internal/assessment/form"
	"github.com/securelups/securelups.co/internal/assessment/scoring"
)

// Priority labels a recommendation's urgency.
type Priority string

const (
	PriorityAlta  Priority = "Alta"
	PriorityMedia Priority = "Media"
)

// Recommendation is one actionable improvement suggestion.
type Recommendation struct {
	Text     string
	Priority Priority
}

// Report is the rendered diagnosis for one assessment.
type Report struct {
	Tier            scoring.Tier
	Narrative       string
	Recommendations []Recommendation
}

var narratives = map[scoring.Tier]string{
	scoring.TierExcelente: "Tu empresa muestra un nivel de madurez excelente en ciberseguridad. Cuentas con buenas prácticas y medidas de protección adecuadas, aunque siempre hay margen para mejorar en un entorno de amenazas en constante evolución.",
	scoring.TierRegular:   "Tu empresa muestra un nivel de madurez medio en ciberseguridad. Has implementado algunas medidas importantes, pero existen áreas de mejora significativas para fortalecer tu postura de seguridad.",
	scoring.TierBajo:      "Tu empresa muestra un nivel de madurez bajo en ciberseguridad. Existen carencias importantes en varias áreas; conviene priorizar las medidas recomendadas para reducir la exposición actual.",
	scoring.TierCritico:   "Tu empresa muestra un nivel de madurez crítico en ciberseguridad. Es urgente implementar medidas básicas de protección para reducir el riesgo de incidentes que podrían tener un impacto significativo en tu negocio.",
}

// fallbackRecommendation is emitted when no specific condition fires.
const fallbackRecommendation = "Mantener actualizadas todas las soluciones de seguridad y realizar auditorías periódicas."

type condition struct {
	applies  func(form.AnswerSet) bool
	text     string
	priority Priority
}

// conditions are evaluated in order; the resulting list keeps that order
// and is never re-sorted by priority.
var conditions = []condition{
	{
		applies: func(a form.AnswerSet) bool {
			return a.HerramientasSeguridad == "Ninguna" || a.HerramientasSeguridad == "Antivirus básico"
		},
		text:     "Implementar soluciones avanzadas de seguridad como EDR o SIEM para mejorar la detección y respuesta a amenazas.",
		priority: PriorityAlta,
	},
	{
		applies: func(a form.AnswerSet) bool {
			return a.Formacion == "Ninguna" || a.Formacion == "Básica para algunos empleados"
		},
		text:     "Establecer un programa continuo de formación en ciberseguridad para todos los empleados.",
		priority: PriorityAlta,
	},
	{
		applies: func(a form.AnswerSet) bool {
			return a.PoliticaContrasenas != "Uso de gestores de contraseñas y 2FA"
		},
		text:     "Implementar gestores de contraseñas y autenticación de dos factores (2FA) para todas las cuentas críticas.",
		priority: PriorityAlta,
	},
	{
		applies: func(a form.AnswerSet) bool {
			return a.EliminacionDatos != "Procedimiento certificado" && a.EliminacionDatos != "Borrado seguro"
		},
		text:     "Implementar procedimientos de borrado seguro para la eliminación de datos y dispositivos.",
		priority: PriorityMedia,
	},
	{
		applies: func(a form.AnswerSet) bool {
			return !a.HasOption(form.QuestionTecnologias, "Servidores propios") && a.MantenimientoTI != "Departamento interno"
		},
		text:     "Considerar la contratación de servicios de monitorización de seguridad gestionados (MSSP).",
		priority: PriorityMedia,
	},
	{
		applies: func(a form.AnswerSet) bool {
			return a.HasOption(form.QuestionTecnologias, "Teletrabajo")
		},
		text:     "Asegurar el acceso remoto mediante VPN corporativa y políticas de confianza cero para el teletrabajo.",
		priority: PriorityMedia,
	},
	{
		applies: func(a form.AnswerSet) bool {
			return a.RedesSociales == "Presencia activa" || a.RedesSociales == "Estrategia completa de redes sociales"
		},
		text:     "Reforzar la concienciación frente a phishing e ingeniería social asociados a la exposición en redes sociales.",
		priority: PriorityMedia,
	},
	{
		applies: func(a form.AnswerSet) bool {
			return a.Sector == "Finanzas" || a.Sector == "Salud"
		},
		text:     "Revisar el cumplimiento normativo de protección de datos aplicable a sectores regulados.",
		priority: PriorityMedia,
	},
}

// Build derives the full report for an answer set and its score.
func Build(answers form.AnswerSet, score int) Report {
	tier := scoring.TierForScore(score)

	var recs []Recommendation
	for _, c := range conditions {
		if c.applies(answers) {
			recs = append(recs, Recommendation{Text: c.text, Priority: c.priority})
		}
	}
	if len(recs) == 0 {
		recs = append(recs, Recommendation{Text: fallbackRecommendation, Priority: PriorityMedia})
	}

	return Report{
		Tier:            tier,
		Narrative:       narratives[tier],
		Recommendations: recs,
	}
}
