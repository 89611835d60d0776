package report

import (
	"strings"
	"testing"

	"github.com/securelups/securelups.co/internal/assessment/form"
	"github.com/securelups/securelups.co/internal/assessment/scoring"
)

func worstAnswers() form.AnswerSet {
	return form.AnswerSet{
		Empresa:               "Acme",
		Email:                 "ceo@acme.com",
		Sector:                "Comercio",
		Tecnologias:           []string{"Correo electrónico"},
		MantenimientoTI:       "Sin gestión formal",
		HerramientasSeguridad: "Ninguna",
		Formacion:             "Ninguna",
		PoliticaContrasenas:   "Sin política formal",
		EliminacionDatos:      "Sin procedimiento",
		RedesSociales:         "Sin presencia",
	}
}

func bestAnswers() form.AnswerSet {
	return form.AnswerSet{
		Empresa:               "Acme",
		Email:                 "ceo@acme.com",
		Sector:                "Tecnología",
		Tecnologias:           []string{"Servidores propios"},
		MantenimientoTI:       "Departamento interno",
		HerramientasSeguridad: "Soluciones avanzadas (EDR, SIEM)",
		Formacion:             "Programa continuo de formación",
		PoliticaContrasenas:   "Uso de gestores de contraseñas y 2FA",
		EliminacionDatos:      "Procedimiento certificado",
		RedesSociales:         "Sin presencia",
	}
}

func TestBuildNarrativeMatchesTier(t *testing.T) {
	answers := worstAnswers()
	built := Build(answers, scoring.Score(answers))
	if built.Tier != scoring.TierCritico {
		t.Fatalf("Tier = %v, want TierCritico", built.Tier)
	}
	if !strings.Contains(built.Narrative, "crítico") {
		t.Fatalf("Narrative = %q, want the critical paragraph", built.Narrative)
	}
}

func TestBuildWorstAnswersFireHighPriorityConditions(t *testing.T) {
	answers := worstAnswers()
	built := Build(answers, scoring.Score(answers))

	if len(built.Recommendations) < 4 {
		t.Fatalf("got %d recommendations, want at least 4", len(built.Recommendations))
	}
	assertHasRecommendation(t, built, "EDR o SIEM", PriorityAlta)
	assertHasRecommendation(t, built, "programa continuo de formación", PriorityAlta)
	assertHasRecommendation(t, built, "autenticación de dos factores", PriorityAlta)
	assertHasRecommendation(t, built, "borrado seguro", PriorityMedia)
}

func TestBuildBestAnswersFallBack(t *testing.T) {
	answers := bestAnswers()
	built := Build(answers, scoring.Score(answers))

	if len(built.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want only the fallback", len(built.Recommendations))
	}
	if built.Recommendations[0].Text != fallbackRecommendation {
		t.Fatalf("Text = %q, want fallback", built.Recommendations[0].Text)
	}
	if built.Tier != scoring.TierExcelente {
		t.Fatalf("Tier = %v, want TierExcelente", built.Tier)
	}
}

func TestBuildTeleworkCondition(t *testing.T) {
	answers := bestAnswers()
	answers.Tecnologias = append(answers.Tecnologias, "Teletrabajo")
	built := Build(answers, scoring.Score(answers))
	assertHasRecommendation(t, built, "VPN corporativa", PriorityMedia)
}

func TestBuildOutsourcedMonitoringCondition(t *testing.T) {
	answers := bestAnswers()
	answers.Tecnologias = []string{"Página web"}
	answers.MantenimientoTI = "Proveedor externo"
	built := Build(answers, scoring.Score(answers))
	assertHasRecommendation(t, built, "MSSP", PriorityMedia)

	answers.MantenimientoTI = "Departamento interno"
	built = Build(answers, scoring.Score(answers))
	assertLacksRecommendation(t, built, "MSSP")
}

func TestBuildSocialExposureCondition(t *testing.T) {
	answers := bestAnswers()
	answers.RedesSociales = "Presencia activa"
	built := Build(answers, scoring.Score(answers))
	assertHasRecommendation(t, built, "phishing", PriorityMedia)

	answers.RedesSociales = "Presencia básica"
	built = Build(answers, scoring.Score(answers))
	assertLacksRecommendation(t, built, "phishing")
}

func TestBuildRegulatedSectorCondition(t *testing.T) {
	for _, sector := range []string{"Finanzas", "Salud"} {
		answers := bestAnswers()
		answers.Sector = sector
		built := Build(answers, scoring.Score(answers))
		assertHasRecommendation(t, built, "cumplimiento normativo", PriorityMedia)
	}
}

func TestBuildKeepsConditionOrder(t *testing.T) {
	answers := worstAnswers()
	answers.Tecnologias = []string{"Teletrabajo"}
	built := Build(answers, scoring.Score(answers))

	toolIdx := recommendationIndex(built, "EDR o SIEM")
	vpnIdx := recommendationIndex(built, "VPN corporativa")
	if toolIdx == -1 || vpnIdx == -1 {
		t.Fatalf("missing expected recommendations: %+v", built.Recommendations)
	}
	if toolIdx > vpnIdx {
		t.Fatal("recommendations must keep condition evaluation order")
	}
}

func assertHasRecommendation(t *testing.T, built Report, fragment string, priority Priority) {
	t.Helper()
	for _, rec := range built.Recommendations {
		if strings.Contains(rec.Text, fragment) {
			if rec.Priority != priority {
				t.Fatalf("recommendation %q has priority %q, want %q", fragment, rec.Priority, priority)
			}
			return
		}
	}
	t.Fatalf("no recommendation containing %q in %+v", fragment, built.Recommendations)
}

func assertLacksRecommendation(t *testing.T, built Report, fragment string) {
	t.Helper()
	if recommendationIndex(built, fragment) != -1 {
		t.Fatalf("unexpected recommendation containing %q", fragment)
	}
}

func recommendationIndex(built Report, fragment string) int {
	for i, rec := range built.Recommendations {
		if strings.Contains(rec.Text, fragment) {
			return i
		}
	}
	return -1
}
