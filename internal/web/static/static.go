// Package static embeds web assets for HTTP serving.
package static

import "embed"

// FS exposes web static assets.
//
//go:embed *.css
var FS embed.FS
