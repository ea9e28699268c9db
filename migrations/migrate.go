// Package migrations embeds the goose SQL migrations of the server database
// (postgres/) and of the client cache database (sqlite/).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialect selects which embedded migration set is applied.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a database.
var ErrNilDB = errors.New("db is nil")

// Migrate applies every pending migration of the given dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	var dir string
	switch dialect {
	case DialectPostgres:
		dir = "postgres"
	case DialectSQLite:
		dir = "sqlite"
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
