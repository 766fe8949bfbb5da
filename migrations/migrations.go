// Package migrations embeds the SQL migration files shipped with the
// binary, one directory per backend.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
