// Package form defines the self-assessment questionnaire: the fixed question
// catalog, per-kind validation, and the step-by-step session state machine.
package form

import "strings"

// Kind classifies how a question is answered and validated.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindSingleSelect
	KindMultiSelect
)

// Question identifiers. The catalog is fixed; every identifier maps to
// exactly one answer before a session can complete.
const (
	QuestionEmpresa               = "empresa"
	QuestionEmail                 = "email"
	QuestionSector                = "sector"
	QuestionTecnologias           = "tecnologias"
	QuestionMantenimientoTI       = "mantenimientoTI"
	QuestionHerramientasSeguridad = "herramientasSeguridad"
	QuestionFormacion             = "formacion"
	QuestionPoliticaContrasenas   = "politicaContrasenas"
	QuestionEliminacionDatos      = "eliminacionDatos"
	QuestionRedesSociales         = "redesSociales"
)

// Question describes one catalog entry. Order in the catalog defines the
// step sequence and the progress percentage.
type Question struct {
	ID          string
	Prompt      string
	Placeholder string
	Kind        Kind
	Options     []string
}

var catalog = []Question{
	{
		ID:          QuestionEmpresa,
		Prompt:      "Nombre de la empresa",
		Placeholder: "Ingrese el nombre de su empresa",
		Kind:        KindText,
	},
	{
		ID:          QuestionEmail,
		Prompt:      "Correo electrónico de contacto",
		Placeholder: "correo@empresa.com",
		Kind:        KindEmail,
	},
	{
		ID:      QuestionSector,
		Prompt:  "Sector o industria",
		Kind:    KindSingleSelect,
		Options: []string{"Tecnología", "Salud", "Manufactura", "Comercio", "Finanzas"},
	},
	{
		ID:      QuestionTecnologias,
		Prompt:  "Tecnologías utilizadas",
		Kind:    KindMultiSelect,
		Options: []string{"Correo electrónico", "Página web", "Servidores propios", "Teletrabajo", "Dispositivos móviles"},
	},
	{
		ID:      QuestionMantenimientoTI,
		Prompt:  "Gestión del mantenimiento de TI",
		Kind:    KindSingleSelect,
		Options: []string{"Departamento interno", "Proveedor externo", "Mixto", "Sin gestión formal"},
	},
	{
		ID:     QuestionHerramientasSeguridad,
		Prompt: "Herramientas de seguridad en uso",
		Kind:   KindSingleSelect,
		Options: []string{
			"Antivirus básico",
			"Solución completa (antivirus, firewall, etc.)",
			"Soluciones avanzadas (EDR, SIEM)",
			"Ninguna",
		},
	},
	{
		ID:     QuestionFormacion,
		Prompt: "Formación en ciberseguridad el último año",
		Kind:   KindSingleSelect,
		Options: []string{
			"Ninguna",
			"Básica para algunos empleados",
			"Completa para todos los empleados",
			"Programa continuo de formación",
		},
	},
	{
		ID:     QuestionPoliticaContrasenas,
		Prompt: "Política de gestión de contraseñas",
		Kind:   KindSingleSelect,
		Options: []string{
			"Sin política formal",
			"Política básica",
			"Política avanzada con requisitos de complejidad",
			"Uso de gestores de contraseñas y 2FA",
		},
	},
	{
		ID:      QuestionEliminacionDatos,
		Prompt:  "Prácticas de eliminación de datos y dispositivos",
		Kind:    KindSingleSelect,
		Options: []string{"Sin procedimiento", "Eliminación básica", "Borrado seguro", "Procedimiento certificado"},
	},
	{
		ID:     QuestionRedesSociales,
		Prompt: "Nivel de actividad en redes sociales",
		Kind:   KindSingleSelect,
		Options: []string{
			"Sin presencia",
			"Presencia básica",
			"Presencia activa",
			"Estrategia completa de redes sociales",
		},
	},
}

// Questions returns the ordered question catalog.
func Questions() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog)
	return out
}

// QuestionCount returns the number of catalog questions.
func QuestionCount() int {
	return len(catalog)
}

// QuestionByID returns the catalog entry for an identifier.
func QuestionByID(id string) (Question, bool) {
	for _, q := range catalog {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Value holds the answer to one question. Text carries free-text, email and
// single-select answers; Options carries multi-select answers.
type Value struct {
	Text    string
	Options []string
}

// Valid reports whether the value passes the question's validator.
func (q Question) Valid(v Value) bool {
	switch q.Kind {
	case KindText:
		return strings.TrimSpace(v.Text) != ""
	case KindEmail:
		return validEmail(v.Text)
	case KindSingleSelect:
		return strings.TrimSpace(v.Text) != ""
	case KindMultiSelect:
		return len(v.Options) > 0
	}
	return false
}

// validEmail accepts local@domain.tld shapes: a non-empty local part, one
// "@", a "." somewhere after it, and no whitespace anywhere.
func validEmail(value string) bool {
	if value == "" || strings.ContainsAny(value, " \t\n") {
		return false
	}
	local, domain, found := strings.Cut(value, "@")
	if !found || local == "" || domain == "" {
		return false
	}
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
