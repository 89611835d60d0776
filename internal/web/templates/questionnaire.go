package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/securelups/securelups.co/internal/assessment/form"
	"github.com/securelups/securelups.co/internal/web/platform/flash"
	"github.com/securelups/securelups.co/internal/web/routepath"
)

// StepView carries everything needed to render one questionnaire step.
type StepView struct {
	Question form.Question
	Answer   form.Value
	Step     int
	Total    int
	Progress int
	Invalid  bool
	Notice   *flash.Notice
}

// QuestionnairePage renders the full questionnaire page for the current step.
func QuestionnairePage(view StepView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="band"><div class="container narrow">`)
		b.WriteString(`<h2>Evaluación de Ciberseguridad</h2>`)
		writeFlash(&b, view.Notice)
		b.WriteString(`<div class="progress-meta">`)
		fmt.Fprintf(&b, `<span>Pregunta %d de %d</span><span>%d%%</span>`, view.Step+1, view.Total, view.Progress)
		b.WriteString(`</div>`)
		fmt.Fprintf(&b, `<div class="progress"><div class="bar" style="width: %d%%"></div></div>`, view.Progress)
		fmt.Fprintf(&b, `<form method="post" action="%s">`, routepath.QuestionnaireAnswer)
		writeQuestionPanel(&b, view)
		b.WriteString(`<div class="step-nav">`)
		if view.Step > 0 {
			fmt.Fprintf(&b, `<button class="btn secondary" type="submit" formaction="%s" formnovalidate>Anterior</button>`, routepath.QuestionnaireBack)
		} else {
			b.WriteString(`<span></span>`)
		}
		label := "Siguiente"
		if view.Step == view.Total-1 {
			label = "Finalizar"
		}
		fmt.Fprintf(&b, `<button class="btn" type="submit">%s</button>`, label)
		b.WriteString(`</div></form></div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Evaluación de Ciberseguridad · SECURELUPS", body)
}

// QuestionFragment renders just the question panel, used as the swap target
// for option toggles.
func QuestionFragment(view StepView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeQuestionPanel(&b, view)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeQuestionPanel(b *strings.Builder, view StepView) {
	q := view.Question
	b.WriteString(`<div id="pregunta" class="question-panel">`)
	fmt.Fprintf(b, `<h3>%s</h3>`, esc(q.Prompt))

	switch q.Kind {
	case form.KindText, form.KindEmail:
		inputType := "text"
		if q.Kind == form.KindEmail {
			inputType = "email"
		}
		class := ""
		if view.Invalid {
			class = ` class="invalid"`
		}
		fmt.Fprintf(b, `<input type="%s" name="valor" value="%s" placeholder="%s"%s>`,
			inputType, esc(view.Answer.Text), esc(q.Placeholder), class)
	case form.KindSingleSelect:
		for _, option := range q.Options {
			checked := ""
			if view.Answer.Text == option {
				checked = " checked"
			}
			b.WriteString(`<label class="option-row">`)
			fmt.Fprintf(b, `<input type="radio" name="valor" value="%s"%s>`, esc(option), checked)
			fmt.Fprintf(b, `<span>%s</span></label>`, esc(option))
		}
	case form.KindMultiSelect:
		for _, option := range q.Options {
			checked := ""
			for _, selected := range view.Answer.Options {
				if selected == option {
					checked = " checked"
					break
				}
			}
			b.WriteString(`<label class="option-row">`)
			fmt.Fprintf(b, `<input type="checkbox" name="opcion" value="%s"%s hx-post="%s" hx-vals='{"alternada":%q}' hx-target="#pregunta" hx-swap="outerHTML">`,
				esc(option), checked, routepath.QuestionnaireToggle, option)
			fmt.Fprintf(b, `<span>%s</span></label>`, esc(option))
		}
	}

	if view.Invalid {
		fmt.Fprintf(b, `<p class="field-error">%s</p>`, esc(invalidMessage(q)))
	}
	b.WriteString(`</div>`)
}

func invalidMessage(q form.Question) string {
	switch q.Kind {
	case form.KindEmail:
		return "Ingresa un correo electrónico válido."
	case form.KindMultiSelect:
		return "Selecciona al menos una opción."
	case form.KindSingleSelect:
		return "Selecciona una opción para continuar."
	default:
		return "Este campo es obligatorio."
	}
}
