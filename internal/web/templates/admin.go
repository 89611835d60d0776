package templates

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/securelups/securelups.co/internal/assessment/scoring"
	"github.com/securelups/securelups.co/internal/web/routepath"
)

// AdminLoginPage renders the dashboard password prompt. errMsg, when set, is
// shown inline under the field.
func AdminLoginPage(errMsg string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="band"><div class="container narrow">`)
		b.WriteString(`<div class="card"><h2>Panel de Administración</h2>`)
		fmt.Fprintf(&b, `<form method="post" action="%s">`, routepath.AdminLogin)
		b.WriteString(`<p><input type="password" name="password" placeholder="Contraseña" autofocus></p>`)
		if errMsg != "" {
			fmt.Fprintf(&b, `<p class="field-error">%s</p>`, esc(errMsg))
		}
		b.WriteString(`<button class="btn" type="submit">Entrar</button>`)
		b.WriteString(`</form></div></div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Administración · SECURELUPS", body)
}

// AdminRow is one dashboard listing entry.
type AdminRow struct {
	ID        string
	Empresa   string
	Email     string
	Sector    string
	Score     int
	Tier      scoring.Tier
	CreatedAt time.Time
}

// DashboardView aggregates the stored results for the operator dashboard.
// Filter, when set, is the contact email the listing was narrowed to.
type DashboardView struct {
	Total     int
	Criticos  int
	Bajos     int
	Regulares int
	Filter    string
	Rows      []AdminRow
}

// AdminDashboardPage renders the aggregate cards and the results table.
func AdminDashboardPage(view DashboardView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="band"><div class="container">`)
		b.WriteString(`<div class="step-nav"><h2>Evaluaciones recibidas</h2>`)
		fmt.Fprintf(&b, `<form method="post" action="%s"><button class="btn secondary" type="submit">Salir</button></form>`, routepath.AdminLogout)
		b.WriteString(`</div>`)

		b.WriteString(`<div class="grid cols-4">`)
		writeStatCard(&b, "Total", view.Total, "")
		writeStatCard(&b, "Riesgo crítico", view.Criticos, "tier-critico")
		writeStatCard(&b, "Riesgo bajo", view.Bajos, "tier-bajo")
		writeStatCard(&b, "Riesgo regular", view.Regulares, "tier-regular")
		b.WriteString(`</div>`)

		fmt.Fprintf(&b, `<form method="get" action="%s" class="filter-row">`, routepath.Admin)
		fmt.Fprintf(&b, `<input type="email" name="email" value="%s" placeholder="Filtrar por correo">`, esc(view.Filter))
		b.WriteString(`<button class="btn secondary" type="submit">Buscar</button>`)
		if view.Filter != "" {
			fmt.Fprintf(&b, `<a href="%s">Ver todas</a>`, routepath.Admin)
		}
		b.WriteString(`</form>`)

		if len(view.Rows) == 0 {
			if view.Filter != "" {
				fmt.Fprintf(&b, `<div class="card"><p>No hay evaluaciones para %s.</p></div>`, esc(view.Filter))
			} else {
				b.WriteString(`<div class="card"><p>Aún no hay evaluaciones registradas.</p></div>`)
			}
		} else {
			b.WriteString(`<div class="card"><table class="listing"><thead><tr>`)
			b.WriteString(`<th>Empresa</th><th>Correo</th><th>Sector</th><th>Puntuación</th><th>Nivel</th><th>Fecha</th><th></th>`)
			b.WriteString(`</tr></thead><tbody>`)
			for _, row := range view.Rows {
				b.WriteString(`<tr>`)
				fmt.Fprintf(&b, `<td>%s</td><td>%s</td><td>%s</td>`, esc(row.Empresa), esc(row.Email), esc(row.Sector))
				fmt.Fprintf(&b, `<td>%d/100</td><td class="%s">%s</td>`, row.Score, row.Tier.ColorClass(), esc(row.Tier.Label()))
				fmt.Fprintf(&b, `<td>%s</td>`, row.CreatedAt.Format("02/01/2006 15:04"))
				fmt.Fprintf(&b, `<td><a href="%s%s">Ver</a></td>`, routepath.AdminResultPrefix, esc(row.ID))
				b.WriteString(`</tr>`)
			}
			b.WriteString(`</tbody></table></div>`)
		}
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Administración · SECURELUPS", body)
}

// AdminDetailPage renders one stored assessment with its full diagnosis.
func AdminDetailPage(view ResultView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="band"><div class="container narrow">`)
		fmt.Fprintf(&b, `<p><a href="%s">&larr; Volver al panel</a></p>`, routepath.Admin)
		writeResultReport(&b, view, true)
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Administración · SECURELUPS", body)
}

// AdminNotFoundPage renders the detail view for a missing record.
func AdminNotFoundPage() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="band"><div class="container narrow">`)
		b.WriteString(`<div class="card"><h2>Evaluación no encontrada</h2>`)
		fmt.Fprintf(&b, `<p><a href="%s">Volver al panel</a></p></div>`, routepath.Admin)
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Administración · SECURELUPS", body)
}

func writeStatCard(b *strings.Builder, label string, value int, colorClass string) {
	class := "value"
	if colorClass != "" {
		class += " " + colorClass
	}
	fmt.Fprintf(b, `<div class="card stat"><div class="%s">%d</div><div class="label">%s</div></div>`,
		class, value, esc(label))
}
