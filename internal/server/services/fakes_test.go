package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/loangate/loangate/internal/common"
	"github.com/loangate/loangate/internal/dbx"
	"github.com/loangate/loangate/internal/server/federated"
	"github.com/loangate/loangate/internal/server/models"
	"github.com/loangate/loangate/internal/server/repositories/accounts"
	"github.com/loangate/loangate/internal/server/repositories/loandocs"
	"github.com/loangate/loangate/internal/server/repositories/loanforms"
	"github.com/loangate/loangate/internal/server/repositories/profiles"
)

// --- in-memory fakes shared by the service tests ---

type fakeAccountsRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*models.Account
	createErr error
	created   []*models.Account
}

func newFakeAccountsRepo() *fakeAccountsRepo {
	return &fakeAccountsRepo{byEmail: map[string]*models.Account{}}
}

func (f *fakeAccountsRepo) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[a.Email]; ok {
		return nil, common.ErrDuplicateAccount
	}
	if a.ID == "" {
		a.ID = fmt.Sprintf("acc-%d", len(f.byEmail)+1)
	}
	f.byEmail[a.Email] = a
	f.created = append(f.created, a)
	return a, nil
}

func (f *fakeAccountsRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrAccountNotFound
	}
	return a, nil
}

func (f *fakeAccountsRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, common.ErrAccountNotFound
}

type fakeProfilesRepo struct {
	mu          sync.Mutex
	byAccountID map[string]*models.Profile
	scaffoldErr error
	upsertErr   error
}

func newFakeProfilesRepo() *fakeProfilesRepo {
	return &fakeProfilesRepo{byAccountID: map[string]*models.Profile{}}
}

func (f *fakeProfilesRepo) CreateScaffold(ctx context.Context, accountID, email string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scaffoldErr != nil {
		return nil, f.scaffoldErr
	}
	if _, ok := f.byAccountID[accountID]; ok {
		return nil, common.ErrDuplicateProfile
	}
	p := &models.Profile{
		ID:         fmt.Sprintf("prof-%d", len(f.byAccountID)+1),
		AccountID:  accountID,
		Email:      email,
		LoanStatus: models.LoanStatusPending,
	}
	f.byAccountID[accountID] = p
	return p, nil
}

func (f *fakeProfilesRepo) GetByAccountID(ctx context.Context, accountID string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byAccountID[accountID]
	if !ok {
		return nil, common.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfilesRepo) Upsert(ctx context.Context, accountID, email string, patch *models.ProfilePatch) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	p, ok := f.byAccountID[accountID]
	if !ok {
		p = &models.Profile{
			ID:         fmt.Sprintf("prof-%d", len(f.byAccountID)+1),
			AccountID:  accountID,
			Email:      email,
			LoanStatus: models.LoanStatusPending,
		}
		f.byAccountID[accountID] = p
	}
	if patch.FullName != nil {
		p.FullName = *patch.FullName
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.JobExperience != nil {
		p.JobExperience = *patch.JobExperience
	}
	if patch.AnnualIncome != nil {
		p.AnnualIncome = *patch.AnnualIncome
	}
	if patch.LoanAmount != nil {
		p.LoanAmount = *patch.LoanAmount
	}
	if patch.CreditScore != nil {
		p.CreditScore = *patch.CreditScore
	}
	if patch.LoanStatus != nil {
		p.LoanStatus = *patch.LoanStatus
	}
	return p, nil
}

type fakeLoanFormsRepo struct {
	mu      sync.Mutex
	byAppID map[string]*models.LoanForm
}

func newFakeLoanFormsRepo() *fakeLoanFormsRepo {
	return &fakeLoanFormsRepo{byAppID: map[string]*models.LoanForm{}}
}

func (f *fakeLoanFormsRepo) Create(ctx context.Context, form *models.LoanForm) (*models.LoanForm, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	form.ID = fmt.Sprintf("form-%d", len(f.byAppID)+1)
	f.byAppID[form.ApplicationID] = form
	return form, nil
}

func (f *fakeLoanFormsRepo) GetByApplicationID(ctx context.Context, applicationID string) (*models.LoanForm, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	form, ok := f.byAppID[applicationID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return form, nil
}

func (f *fakeLoanFormsRepo) UpdateStatus(ctx context.Context, applicationID, status string) (*models.LoanForm, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	form, ok := f.byAppID[applicationID]
	if !ok {
		return nil, common.ErrNotFound
	}
	form.Status = status
	return form, nil
}

type fakeLoanDocsRepo struct {
	mu      sync.Mutex
	byAppID map[string]*models.LoanDocuments
}

func newFakeLoanDocsRepo() *fakeLoanDocsRepo {
	return &fakeLoanDocsRepo{byAppID: map[string]*models.LoanDocuments{}}
}

func (f *fakeLoanDocsRepo) Create(ctx context.Context, docs *models.LoanDocuments) (*models.LoanDocuments, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	docs.ID = fmt.Sprintf("doc-%d", len(f.byAppID)+1)
	f.byAppID[docs.ApplicationID] = docs
	return docs, nil
}

func (f *fakeLoanDocsRepo) GetByApplicationID(ctx context.Context, applicationID string) (*models.LoanDocuments, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	docs, ok := f.byAppID[applicationID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return docs, nil
}

type fakeRepoManager struct {
	accounts *fakeAccountsRepo
	profiles *fakeProfilesRepo
	forms    *fakeLoanFormsRepo
	docs     *fakeLoanDocsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		accounts: newFakeAccountsRepo(),
		profiles: newFakeProfilesRepo(),
		forms:    newFakeLoanFormsRepo(),
		docs:     newFakeLoanDocsRepo(),
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accounts.Repository      { return m.accounts }
func (m *fakeRepoManager) Profiles(db dbx.DBTX) profiles.Repository      { return m.profiles }
func (m *fakeRepoManager) LoanForms(db dbx.DBTX) loanforms.Repository    { return m.forms }
func (m *fakeRepoManager) LoanDocuments(db dbx.DBTX) loandocs.Repository { return m.docs }

type fakeVerifier struct {
	identity *federated.Identity
	err      error
}

func (f *fakeVerifier) Verify(ctx context.Context, rawAssertion string) (*federated.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}
