// Package profiles is the profile registry's storage: at most one profile
// per account, enforced by a unique constraint on the owning account id.
package profiles

import (
	"context"

	"github.com/loangate/loangate/internal/server/models"
)

type Repository interface {
	// CreateScaffold inserts an empty profile for the account with loan
	// status Pending. A second profile for the same account fails with
	// common.ErrDuplicateProfile via the store's unique constraint.
	CreateScaffold(ctx context.Context, accountID, email string) (*models.Profile, error)

	// GetByAccountID returns the account's profile or common.ErrProfileNotFound.
	GetByAccountID(ctx context.Context, accountID string) (*models.Profile, error)

	// Upsert applies the patch to the account's profile in a single atomic
	// find-or-create-and-merge statement, creating the row if absent and
	// refreshing updated_at. Unset patch fields keep their stored values;
	// concurrent upserts for the same account never produce two rows, and
	// overlapping fields resolve last-writer-wins at the store.
	Upsert(ctx context.Context, accountID, email string, patch *models.ProfilePatch) (*models.Profile, error)
}
