// Package migrations embeds the versioned schema of the secrets table and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Dialects understood by [Migrate]. The values double as goose dialect names.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

var (
	errNilDB          = errors.New("migration error: db is nil")
	errUnknownDialect = errors.New("migration error: unknown dialect")
)

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

func dialectDir(dialect string) (string, error) {
	switch dialect {
	case DialectSQLite:
		return "sqlite", nil
	case DialectPostgres:
		return "postgres", nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownDialect, dialect)
}

// Migrate brings db up to the latest schema version for dialect. Progress
// goes to log at debug level; a nil log discards it.
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errNilDB
	}

	dir, err := dialectDir(dialect)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if log == nil {
		log = logger.Nop()
	}
	goose.SetLogger(gooseLogger{log: log})
	defer goose.SetLogger(goose.NopLogger())

	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)

	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
