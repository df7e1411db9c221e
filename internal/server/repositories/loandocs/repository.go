// Package loandocs stores the storage keys of submitted loan document
// bundles. Bundles reference loan applications by application id only; the
// relation is weak and either side may be absent.
package loandocs

import (
	"context"

	"github.com/loangate/loangate/internal/server/models"
)

type Repository interface {
	// Create records a bundle's storage keys.
	Create(ctx context.Context, docs *models.LoanDocuments) (*models.LoanDocuments, error)

	// GetByApplicationID returns the most recent bundle for the application
	// or common.ErrNotFound.
	GetByApplicationID(ctx context.Context, applicationID string) (*models.LoanDocuments, error)
}
