package migrations

import "embed"

// FS embeds the SQL migration files, one directory per dialect
// ("postgres", "sqlite"). The golang-migrate library reads them via the
// iofs driver when applying migrations.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Version is the schema version both dialects migrate to.
const Version = 1

// Dialect directories inside FS.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)
