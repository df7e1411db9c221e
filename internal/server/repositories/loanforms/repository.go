// Package loanforms stores loan application records.
package loanforms

import (
	"context"

	"github.com/loangate/loangate/internal/server/models"
)

type Repository interface {
	// Create inserts the application and returns it with generated ids.
	Create(ctx context.Context, form *models.LoanForm) (*models.LoanForm, error)

	// GetByApplicationID returns the application or common.ErrNotFound.
	GetByApplicationID(ctx context.Context, applicationID string) (*models.LoanForm, error)

	// UpdateStatus sets the application status and refreshes updated_at.
	// A missing application fails with common.ErrNotFound.
	UpdateStatus(ctx context.Context, applicationID, status string) (*models.LoanForm, error)
}
