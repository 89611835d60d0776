package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/securelups/securelups.co/internal/assessment/report"
	"github.com/securelups/securelups.co/internal/assessment/scoring"
	"github.com/securelups/securelups.co/internal/assessment/storage"
	"github.com/securelups/securelups.co/internal/web/routepath"
)

// ResultView carries one persisted assessment plus its derived diagnosis.
type ResultView struct {
	Record storage.Record
	Tier   scoring.Tier
	Report report.Report
}

// ResultsPage renders the diagnosis for a completed assessment.
func ResultsPage(view ResultView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="band"><div class="container narrow">`)
		writeResultReport(&b, view, false)
		b.WriteString(`<div class="step-nav">`)
		fmt.Fprintf(&b, `<a class="btn secondary" href="%s">Volver al inicio</a>`, routepath.Home)
		fmt.Fprintf(&b, `<a class="btn cta" href="%s#planes">Ver planes</a>`, routepath.Home)
		b.WriteString(`</div></div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Resultados · SECURELUPS", body)
}

// ResultsNotFoundPage tells the visitor no assessment result is available.
func ResultsNotFoundPage() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="band"><div class="container narrow">`)
		b.WriteString(`<div class="card"><h2>No encontramos tu evaluación</h2>`)
		b.WriteString(`<p>No hay resultados disponibles. Completa la evaluación para obtener tu diagnóstico de ciberseguridad.</p>`)
		fmt.Fprintf(&b, `<a class="btn" href="%s">Iniciar evaluación</a></div>`, routepath.Questionnaire)
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Resultados · SECURELUPS", body)
}

// ResultsErrorPage reports a load failure, distinct from a missing result.
func ResultsErrorPage() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="band"><div class="container narrow">`)
		b.WriteString(`<div class="card"><h2>No pudimos cargar tus resultados</h2>`)
		b.WriteString(`<p>Ocurrió un error al consultar tu evaluación. Inténtalo de nuevo en unos minutos.</p>`)
		fmt.Fprintf(&b, `<a class="btn secondary" href="%s">Volver al inicio</a></div>`, routepath.Home)
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Resultados · SECURELUPS", body)
}

// writeResultReport renders the shared diagnosis block used by the public
// results page and the admin detail page.
func writeResultReport(b *strings.Builder, view ResultView, adminDetail bool) {
	answers := view.Record.Answers

	fmt.Fprintf(b, `<div class="tier-strip %s"></div>`, view.Tier.ColorClass())
	b.WriteString(`<div class="card">`)
	if adminDetail {
		fmt.Fprintf(b, `<h2>%s</h2><p class="meta">%s · %s · %s</p>`,
			esc(answers.Empresa), esc(answers.Email), esc(answers.Sector),
			view.Record.CreatedAt.Format("02/01/2006 15:04"))
	} else {
		fmt.Fprintf(b, `<h2>Diagnóstico de %s</h2>`, esc(answers.Empresa))
	}
	b.WriteString(`<div class="grid cols-2"><div class="stat">`)
	fmt.Fprintf(b, `<div class="value">%d<span class="meta">/100</span></div>`, view.Record.Score)
	b.WriteString(`<div class="label">Puntuación de madurez</div></div><div class="stat">`)
	fmt.Fprintf(b, `<div class="value %s" data-icon="%s">%s</div>`, view.Tier.ColorClass(), view.Tier.Icon(), esc(view.Tier.Label()))
	b.WriteString(`<div class="label">Nivel de riesgo</div></div></div>`)
	fmt.Fprintf(b, `<p>%s</p>`, esc(view.Report.Narrative))
	b.WriteString(`</div>`)

	b.WriteString(`<div class="card"><h3>Recomendaciones</h3><ul>`)
	for _, rec := range view.Report.Recommendations {
		priorityClass := "media"
		if rec.Priority == report.PriorityAlta {
			priorityClass = "alta"
		}
		fmt.Fprintf(b, `<li><span class="priority %s">%s</span>%s</li>`,
			priorityClass, esc(string(rec.Priority)), esc(rec.Text))
	}
	b.WriteString(`</ul></div>`)

	if len(answers.Tecnologias) > 0 {
		b.WriteString(`<div class="card"><h3>Tecnologías en uso</h3><div>`)
		for _, tech := range answers.Tecnologias {
			fmt.Fprintf(b, `<span class="badge">%s</span>`, esc(tech))
		}
		b.WriteString(`</div></div>`)
	}

	b.WriteString(`<div class="card"><h3>Respuestas</h3><table class="listing"><tbody>`)
	writeAnswerRow(b, "Mantenimiento de TI", answers.MantenimientoTI)
	writeAnswerRow(b, "Herramientas de seguridad", answers.HerramientasSeguridad)
	writeAnswerRow(b, "Formación", answers.Formacion)
	writeAnswerRow(b, "Política de contraseñas", answers.PoliticaContrasenas)
	writeAnswerRow(b, "Eliminación de datos", answers.EliminacionDatos)
	writeAnswerRow(b, "Redes sociales", answers.RedesSociales)
	b.WriteString(`</tbody></table></div>`)
}

func writeAnswerRow(b *strings.Builder, label, value string) {
	if value == "" {
		value = "Sin respuesta"
	}
	fmt.Fprintf(b, `<tr><td>%s</td><td>%s</td></tr>`, esc(label), esc(value))
}

// NewResultView derives the presentation bundle for one record.
func NewResultView(record storage.Record) ResultView {
	return ResultView{
		Record: record,
		Tier:   scoring.TierForScore(record.Score),
		Report: report.Build(record.Answers, record.Score),
	}
}
