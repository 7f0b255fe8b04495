// Package migrations embeds the goose SQL migrations for the spell store.
// The same files serve PostgreSQL and SQLite.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
