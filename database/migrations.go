package database

import (
	"embed"
	"io/fs"

	"github.com/go-extras/go-kit/must"
)

//go:embed migration/*.sql
var migrationFS embed.FS

// Migrations returns the schema and seed migrations rooted at their directory.
func Migrations() fs.FS {
	return must.Must(fs.Sub(migrationFS, "migration"))
}
