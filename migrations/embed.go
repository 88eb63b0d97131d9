// Package migrations holds the schema for each SQL persistence sink.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
