package migrations

import "embed"

// FS contains embedded SQLite migrations for assessment result storage.
//
//go:embed *.sql
var FS embed.FS
