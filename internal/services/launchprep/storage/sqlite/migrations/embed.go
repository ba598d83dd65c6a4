package migrations

import "embed"

// FS contains embedded SQLite migrations for launch preparation storage.
//
//go:embed *.sql
var FS embed.FS
