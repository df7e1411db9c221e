package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/loangate/loangate/internal/common"
	"github.com/loangate/loangate/internal/dbx"
	"github.com/loangate/loangate/internal/server/auth"
	"github.com/loangate/loangate/internal/server/config"
	"github.com/loangate/loangate/internal/server/federated"
	"github.com/loangate/loangate/internal/server/models"
	"github.com/loangate/loangate/internal/server/repositories/repomanager"
)

// IdentityService verifies local credentials and federated identity
// assertions, creating accounts and their scaffold profiles as needed.
// It holds no per-request state; every flow either returns a verified
// account or a typed failure, and never retries internally.
type IdentityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	verifier    federated.Verifier
	tokens      *TokenService
	bcryptCost  int
}

func NewIdentityService(db *sql.DB, m repomanager.RepositoryManager, v federated.Verifier, tokens *TokenService, cfg *config.Config) *IdentityService {
	return &IdentityService{
		db:          db,
		repomanager: m,
		verifier:    v,
		tokens:      tokens,
		bcryptCost:  cfg.BcryptCost,
	}
}

// createWithScaffold inserts the account and its empty profile in one
// transaction, so a crash between the two writes cannot leave an orphan
// account. Duplicate emails surface as common.ErrDuplicateAccount from the
// store's unique constraint.
func (s *IdentityService) createWithScaffold(ctx context.Context, account *models.Account) (*models.Account, error) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Accounts(tx).Create(ctx, account)
		if err != nil {
			return err
		}

		if _, err := s.repomanager.Profiles(tx).CreateScaffold(ctx, created.ID, created.Email); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// SignUp registers a local account. The password is stored only as a bcrypt
// digest; a scaffold profile is created together with the account.
func (s *IdentityService) SignUp(ctx context.Context, name, email, password string) (*models.Account, error) {

	if name == "" || email == "" || password == "" {
		return nil, common.ErrValidation
	}

	digest, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account := &models.Account{
		Name:           name,
		Email:          email,
		CredentialKind: models.CredentialLocal,
		PasswordDigest: digest,
	}

	return s.createWithScaffold(ctx, account)
}

// Login verifies a local credential pair and issues a bearer token.
// Fails with common.ErrAccountNotFound for an unknown email and
// common.ErrInvalidCredential when the account has no usable local
// credential or the digest comparison fails.
func (s *IdentityService) Login(ctx context.Context, email, password string) (string, *models.Account, error) {

	if email == "" || password == "" {
		return "", nil, common.ErrValidation
	}

	account, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if account.Federated() {
		return "", nil, common.ErrInvalidCredential
	}

	if !auth.VerifyPassword(account.PasswordDigest, password) {
		return "", nil, common.ErrInvalidCredential
	}

	token, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}

	return token, account, nil
}

// verifyAssertion delegates to the external verifier and maps any
// verification error (bad signature, wrong audience, expired assertion) to
// common.ErrAuthenticationFailed.
func (s *IdentityService) verifyAssertion(ctx context.Context, assertion string) (*federated.Identity, error) {
	if assertion == "" {
		return nil, common.ErrValidation
	}

	identity, err := s.verifier.Verify(ctx, assertion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAuthenticationFailed, err)
	}

	return identity, nil
}

func federatedAccount(identity *federated.Identity) *models.Account {
	return &models.Account{
		Name:             identity.Name,
		Email:            identity.Email,
		CredentialKind:   models.CredentialFederated,
		FederatedSubject: identity.Subject,
	}
}

// FederatedSignUp verifies the assertion and creates a federated account and
// scaffold profile. An existing account for the asserted email fails with
// common.ErrDuplicateAccount; no local password is involved at any point.
func (s *IdentityService) FederatedSignUp(ctx context.Context, assertion string) (string, *models.Account, error) {

	identity, err := s.verifyAssertion(ctx, assertion)
	if err != nil {
		return "", nil, err
	}

	account, err := s.createWithScaffold(ctx, federatedAccount(identity))
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}

	return token, account, nil
}

// FederatedLogin verifies the assertion and logs the asserted identity in,
// creating the account on first sight. An account that already exists is
// accepted without any local-password comparison.
func (s *IdentityService) FederatedLogin(ctx context.Context, assertion string) (string, *models.Account, error) {

	identity, err := s.verifyAssertion(ctx, assertion)
	if err != nil {
		return "", nil, err
	}

	account, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, identity.Email)
	if errors.Is(err, common.ErrAccountNotFound) {
		account, err = s.createWithScaffold(ctx, federatedAccount(identity))
		if errors.Is(err, common.ErrDuplicateAccount) {
			// lost a race against a concurrent first login; the row exists now
			account, err = s.repomanager.Accounts(s.db).GetByEmail(ctx, identity.Email)
		}
	}
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}

	return token, account, nil
}
