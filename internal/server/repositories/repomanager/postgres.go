// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studyguide/internal/dbx"
	"github.com/dmitrijs2005/studyguide/internal/logging"
	"github.com/dmitrijs2005/studyguide/internal/server/migrations"
	"github.com/dmitrijs2005/studyguide/internal/server/repositories/history"
	"github.com/dmitrijs2005/studyguide/internal/server/repositories/subjects"
	"github.com/dmitrijs2005/studyguide/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	log logging.Logger
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Subjects returns a subjects.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Subjects(db dbx.DBTX) subjects.Repository {
	return subjects.NewPostgresRepository(db, m.log)
}

// History returns a history.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) History(db dbx.DBTX) history.Repository {
	return history.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB, log logging.Logger) (RepositoryManager, error) {
	return &PostgresRepositoryManager{log: log.With("module", "repositories")}, nil
}
