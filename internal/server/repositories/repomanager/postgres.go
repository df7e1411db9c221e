// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/loangate/loangate/internal/dbx"
	"github.com/loangate/loangate/internal/server/migrations"
	"github.com/loangate/loangate/internal/server/repositories/accounts"
	"github.com/loangate/loangate/internal/server/repositories/loandocs"
	"github.com/loangate/loangate/internal/server/repositories/loanforms"
	"github.com/loangate/loangate/internal/server/repositories/profiles"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Accounts returns an accounts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

// Profiles returns a profiles.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewPostgresRepository(db)
}

// LoanForms returns a loanforms.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) LoanForms(db dbx.DBTX) loanforms.Repository {
	return loanforms.NewPostgresRepository(db)
}

// LoanDocuments returns a loandocs.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) LoanDocuments(db dbx.DBTX) loandocs.Repository {
	return loandocs.NewPostgresRepository(db)
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
	return gooseUpContext(ctx, db, ".")
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
