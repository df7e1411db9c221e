package services

import (
	"context"
	"database/sql"

	"github.com/loangate/loangate/internal/common"
	"github.com/loangate/loangate/internal/server/models"
	"github.com/loangate/loangate/internal/server/repositories/repomanager"
)

// ProfileService is the profile registry: it maintains the strict 1:1
// account↔profile relationship. The owning relation is keyed by the
// account's immutable id; email-addressed calls resolve the account first
// and then operate on the id.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

// Fetch returns the profile owned by the account with the given email.
// Fails with common.ErrAccountNotFound when no such account exists and
// common.ErrProfileNotFound when the account has no profile yet.
func (s *ProfileService) Fetch(ctx context.Context, email string) (*models.Profile, error) {

	if email == "" {
		return nil, common.ErrValidation
	}

	account, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return s.repomanager.Profiles(s.db).GetByAccountID(ctx, account.ID)
}

// Upsert resolves the owning account and applies the patch through the
// store's single atomic find-or-create-and-merge operation. Concurrent
// upserts for the same account never produce a second profile; overlapping
// fields resolve last-writer-wins at the store.
func (s *ProfileService) Upsert(ctx context.Context, email string, patch *models.ProfilePatch) (*models.Profile, error) {

	if email == "" || patch == nil {
		return nil, common.ErrValidation
	}

	account, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return s.repomanager.Profiles(s.db).Upsert(ctx, account.ID, account.Email, patch)
}
