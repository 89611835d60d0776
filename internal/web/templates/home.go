package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/securelups/securelups.co/internal/web/content"
	"github.com/securelups/securelups.co/internal/web/routepath"
)

// HomeView carries the marketing copy rendered on the landing page.
type HomeView struct {
	Services     []content.Service
	Workshops    []content.Workshop
	Plans        []content.Plan
	Testimonials []content.Testimonial
	FAQs         []content.FAQ
}

// HomePage renders the landing page: hero, services, workshops, pricing,
// testimonials and FAQ.
func HomePage(view HomeView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="hero">`)
		b.WriteString(`<h1>Protege tu empresa con expertos en ciberseguridad</h1>`)
		b.WriteString(`<p>Evaluamos los riesgos de tu negocio y diseñamos un plan de protección a tu medida.</p>`)
		fmt.Fprintf(&b, `<p><a class="btn cta" href="%s">Evaluación gratuita</a></p>`, routepath.Questionnaire)
		b.WriteString(`</section>`)

		b.WriteString(`<section id="servicios" class="band deep"><div class="container">`)
		b.WriteString(`<h2>Nuestros Servicios</h2><div class="grid cols-3">`)
		for _, s := range view.Services {
			fmt.Fprintf(&b, `<div class="card"><h3>%s</h3><p>%s</p></div>`, esc(s.Title), esc(s.Description))
		}
		b.WriteString(`</div></div></section>`)

		b.WriteString(`<section id="workshops" class="band"><div class="container">`)
		b.WriteString(`<h2>Workshops de Formación</h2><div class="grid cols-2">`)
		for _, ws := range view.Workshops {
			b.WriteString(`<div class="card">`)
			fmt.Fprintf(&b, `<h3>%s</h3><p>%s</p>`, esc(ws.Title), esc(ws.Description))
			fmt.Fprintf(&b, `<p class="meta">%s · %s · %s</p>`, esc(ws.Duration), esc(ws.Participants), esc(ws.Level))
			fmt.Fprintf(&b, `<p><strong>$%s COP</strong></p>`, esc(ws.Price))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div></div></section>`)

		b.WriteString(`<section id="planes" class="band deep"><div class="container">`)
		b.WriteString(`<h2>Planes y Precios</h2><div class="grid cols-3">`)
		for _, p := range view.Plans {
			class := "card"
			if p.Popular {
				class = "card popular"
			}
			fmt.Fprintf(&b, `<div class="%s">`, class)
			fmt.Fprintf(&b, `<h3>%s</h3><p class="meta">%s</p>`, esc(p.Name), esc(p.Description))
			fmt.Fprintf(&b, `<p><strong>$%s COP</strong></p><ul>`, esc(p.Price))
			for _, f := range p.Features {
				fmt.Fprintf(&b, `<li>%s</li>`, esc(f))
			}
			fmt.Fprintf(&b, `</ul><a class="btn" href="%s">%s</a></div>`, routepath.Questionnaire, esc(p.CTA))
		}
		b.WriteString(`</div></div></section>`)

		b.WriteString(`<section class="band"><div class="container">`)
		b.WriteString(`<h2>Lo que dicen nuestros clientes</h2><div class="grid cols-2">`)
		for _, t := range view.Testimonials {
			b.WriteString(`<div class="card">`)
			fmt.Fprintf(&b, `<p>%s</p>`, esc(t.Content))
			fmt.Fprintf(&b, `<p class="meta"><strong>%s</strong> · %s</p>`, esc(t.Name), esc(t.Position))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div></div></section>`)

		b.WriteString(`<section class="band"><div class="container narrow" style="text-align: center">`)
		b.WriteString(`<h2>¿No sabes por dónde empezar?</h2>`)
		b.WriteString(`<p>Realiza nuestra evaluación gratuita y descubre el nivel de madurez en ciberseguridad de tu empresa. Nuestros consultores te acompañarán en cada paso.</p>`)
		fmt.Fprintf(&b, `<a class="btn cta" href="%s">Solicitar consultoría</a>`, routepath.Questionnaire)
		b.WriteString(`</div></section>`)

		b.WriteString(`<section class="band deep"><div class="container narrow">`)
		b.WriteString(`<h2>Preguntas Frecuentes</h2>`)
		for _, f := range view.FAQs {
			fmt.Fprintf(&b, `<details class="card"><summary>%s</summary><p>%s</p></details>`, esc(f.Question), esc(f.Answer))
		}
		b.WriteString(`</div></section>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("SECURELUPS · Consultoría de Ciberseguridad", body)
}
