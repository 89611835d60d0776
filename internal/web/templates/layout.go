// Package templates renders the site's HTML pages and fragments.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/securelups/securelups.co/internal/web/platform/flash"
	"github.com/securelups/securelups.co/internal/web/routepath"
)

func esc(s string) string { return templ.EscapeString(s) }

// Layout wraps a page body with the shared chrome: header, nav and footer.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="es"><head>`)
		b.WriteString(`<meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, "<title>%s</title>", esc(title))
		b.WriteString(`<link rel="stylesheet" href="/static/site.css">`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
		b.WriteString(`</head><body>`)
		b.WriteString(`<header class="site-header">`)
		fmt.Fprintf(&b, `<a class="brand" href="%s">SECURELUPS</a>`, routepath.Home)
		b.WriteString(`<nav>`)
		fmt.Fprintf(&b, `<a href="%s#servicios">Servicios</a>`, routepath.Home)
		fmt.Fprintf(&b, `<a href="%s#workshops">Workshops</a>`, routepath.Home)
		fmt.Fprintf(&b, `<a href="%s#planes">Planes</a>`, routepath.Home)
		fmt.Fprintf(&b, `<a href="%s">Evaluación</a>`, routepath.Questionnaire)
		b.WriteString(`</nav></header><main>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><footer class="site-footer"><p>© SECURELUPS · Consultoría de ciberseguridad</p></footer></body></html>`)
		return err
	})
}

// writeFlash appends a notice banner, or nothing when notice is nil.
func writeFlash(b *strings.Builder, notice *flash.Notice) {
	if notice == nil {
		return
	}
	fmt.Fprintf(b, `<div class="flash %s">%s</div>`, esc(string(notice.Kind)), esc(notice.Message))
}
