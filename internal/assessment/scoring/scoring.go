// Package scoring derives the 0-100 risk score and the discrete risk tier
// from a completed answer set.
package scoring

import "github.com/securelups/securelups.co/internal/assessment/form"

// Point ladder per scored question. Option texts must match the catalog
// literally; anything unrecognized earns no credit rather than erroring.
var (
	securityToolPoints = map[string]int{
		"Ninguna":          0,
		"Antivirus básico": 5,
		"Solución completa (antivirus, firewall, etc.)": 15,
		"Soluciones avanzadas (EDR, SIEM)":              25,
	}
	trainingPoints = map[string]int{
		"Ninguna":                          0,
		"Básica para algunos empleados":    5,
		"Completa para todos los empleados": 15,
		"Programa continuo de formación":    25,
	}
	passwordPolicyPoints = map[string]int{
		"Sin política formal": 0,
		"Política básica":     5,
		"Política avanzada con requisitos de complejidad": 15,
		"Uso de gestores de contraseñas y 2FA":            25,
	}
	dataDisposalPoints = map[string]int{
		"Sin procedimiento":        0,
		"Eliminación básica":       5,
		"Borrado seguro":           15,
		"Procedimiento certificado": 25,
	}
)

// Score computes the risk score for an answer set. Only the four maturity
// questions contribute points; the descriptive answers (company, email,
// sector, technologies, IT maintenance, social presence) never do. The sum
// is bounded to [0,100] by construction.
func Score(answers form.AnswerSet) int {
	score := securityToolPoints[answers.HerramientasSeguridad]
	score += trainingPoints[answers.Formacion]
	score += passwordPolicyPoints[answers.PoliticaContrasenas]
	score += dataDisposalPoints[answers.EliminacionDatos]
	return score
}

// Tier is an ordered risk classification; higher values mean lower risk.
type Tier int

const (
	TierCritico Tier = iota
	TierBajo
	TierRegular
	TierExcelente
)

// TierForScore maps a score to its tier using fixed thresholds.
func TierForScore(score int) Tier {
	switch {
	case score >= 80:
		return TierExcelente
	case score >= 60:
		return TierRegular
	case score >= 40:
		return TierBajo
	default:
		return TierCritico
	}
}

// Label returns the tier display name.
func (t Tier) Label() string {
	switch t {
	case TierExcelente:
		return "Excelente"
	case TierRegular:
		return "Regular"
	case TierBajo:
		return "Bajo"
	default:
		return "Crítico"
	}
}

// ColorClass returns the stylesheet class used wherever the tier is shown.
func (t Tier) ColorClass() string {
	switch t {
	case TierExcelente:
		return "tier-excelente"
	case TierRegular:
		return "tier-regular"
	case TierBajo:
		return "tier-bajo"
	default:
		return "tier-critico"
	}
}

// Icon returns the icon identifier paired with the tier.
func (t Tier) Icon() string {
	switch t {
	case TierExcelente:
		return "check-circle"
	case TierRegular:
		return "clock"
	case TierBajo:
		return "alert-triangle"
	default:
		return "shield-alert"
	}
}
