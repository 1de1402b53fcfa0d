// Package migrations embeds the client database schema for goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
