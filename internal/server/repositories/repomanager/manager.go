package repomanager

import (
	"context"
	"database/sql"

	"github.com/loangate/loangate/internal/dbx"
	"github.com/loangate/loangate/internal/server/repositories/accounts"
	"github.com/loangate/loangate/internal/server/repositories/loandocs"
	"github.com/loangate/loangate/internal/server/repositories/loanforms"
	"github.com/loangate/loangate/internal/server/repositories/profiles"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run several repositories inside one transaction, and exposes
// a schema migration hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	LoanForms(db dbx.DBTX) loanforms.Repository
	LoanDocuments(db dbx.DBTX) loandocs.Repository
}
