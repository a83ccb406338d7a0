// Package migrations embeds the versioned SQL schema for golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
