// Package db holds the SQL migrations for the reference schema. The
// migrations are embedded so production builds of modelctl carry them
// without needing the source tree on disk.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
