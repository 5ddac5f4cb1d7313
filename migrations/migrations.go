// Package migrations embeds the SQL schema migrations.
package migrations

import "embed"

// FS holds the *.up.sql and *.down.sql files, named for golang-migrate.
//
//go:embed *.sql
var FS embed.FS
