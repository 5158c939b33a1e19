// Package migrations embeds the SQL schema of the dashboard database.
package migrations

import "embed"

// FS holds the *.up.sql and *.down.sql files read by golang-migrate through
// its iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service migrates to on startup.
const Version = 1
