// Package accounts is the credential store: it persists accounts and
// enforces email uniqueness at the database level.
package accounts

import (
	"context"

	"github.com/loangate/loangate/internal/server/models"
)

type Repository interface {
	// Create inserts the account and returns it with the generated id.
	// A duplicate email fails with common.ErrDuplicateAccount; uniqueness is
	// enforced by the store's constraint, never by a prior existence check.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// GetByEmail returns the account with the given email or
	// common.ErrAccountNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetByID returns the account with the given id or
	// common.ErrAccountNotFound.
	GetByID(ctx context.Context, id string) (*models.Account, error)
}
