package migrations

import "embed"

// FS SQL-миграции схемы клуба
//
//go:embed *.sql
var FS embed.FS
