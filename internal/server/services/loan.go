package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/loangate/loangate/internal/common"
	"github.com/loangate/loangate/internal/server/models"
	"github.com/loangate/loangate/internal/server/repositories/repomanager"
)

// LoanService manages loan application records.
type LoanService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLoanService(db *sql.DB, m repomanager.RepositoryManager) *LoanService {
	return &LoanService{db: db, repomanager: m}
}

// CreateApplication records a new loan application. A fresh application id
// is generated when the caller does not supply one; the status defaults to
// pending.
func (s *LoanService) CreateApplication(ctx context.Context, form *models.LoanForm) (*models.LoanForm, error) {

	if form == nil || form.Email == "" {
		return nil, common.ErrValidation
	}

	if form.ApplicationID == "" {
		form.ApplicationID = uuid.New().String()
	}
	if form.Status == "" {
		form.Status = "pending"
	}

	return s.repomanager.LoanForms(s.db).Create(ctx, form)
}

// Get returns the application with the given id or common.ErrNotFound.
func (s *LoanService) Get(ctx context.Context, applicationID string) (*models.LoanForm, error) {
	if applicationID == "" {
		return nil, common.ErrValidation
	}

	return s.repomanager.LoanForms(s.db).GetByApplicationID(ctx, applicationID)
}

// UpdateStatus sets a new status on the application.
func (s *LoanService) UpdateStatus(ctx context.Context, applicationID, status string) (*models.LoanForm, error) {
	if applicationID == "" || status == "" {
		return nil, common.ErrValidation
	}

	return s.repomanager.LoanForms(s.db).UpdateStatus(ctx, applicationID, status)
}
