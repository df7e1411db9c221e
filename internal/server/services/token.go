// Package services implements the application services of the Loan Gate
// backend: identity verification, token lifecycle, the profile registry,
// loan applications, document bundles and the eligibility rule.
package services

import (
	"time"

	"github.com/loangate/loangate/internal/server/auth"
	"github.com/loangate/loangate/internal/server/config"
)

// TokenService issues and verifies signed, time-bounded bearer tokens.
// Tokens are stateless: possession suffices for authorization and there is
// no revocation list, so a compromised token stays valid until expiry.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.SecretKey),
		validity: cfg.TokenValidityDuration,
	}
}

// Issue produces a signed token embedding the account id and email.
func (s *TokenService) Issue(accountID, email string) (string, error) {
	return auth.GenerateToken(accountID, email, s.secret, s.validity)
}

// Verify checks a bearer token and returns its payload. Fails with
// common.ErrTokenExpired past the validity window and common.ErrInvalidToken
// on any other verification failure.
func (s *TokenService) Verify(token string) (*auth.Claims, error) {
	return auth.ParseToken(token, s.secret)
}
