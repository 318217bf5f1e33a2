// Package migrations embeds the SQL schema migrations of the catalog database.
package migrations

import "embed"

// FS holds the *.sql migration files in golang-migrate naming format.
//
//go:embed *.sql
var FS embed.FS
