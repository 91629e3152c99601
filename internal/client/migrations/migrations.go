// Package migrations embeds the schema of the client-side session cache.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
