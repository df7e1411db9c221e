package federated

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// Config holds the explicit settings of the OIDC verifier: the issuer to
// fetch keys from and the audience (client ID) every assertion must carry.
type Config struct {
	IssuerURL string
	Audience  string
}

// OIDCVerifier validates ID tokens against a provider's published keys.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the issuer and prepares a verifier bound to the
// expected audience.
func NewOIDCVerifier(ctx context.Context, cfg Config) (*OIDCVerifier, error) {
	if cfg.IssuerURL == "" || cfg.Audience == "" {
		return nil, errors.New("oidc config missing issuer or audience")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("oidc provider init: %w", err)
	}

	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.Audience}),
	}, nil
}

// Verify checks the assertion's signature, audience and expiry, then extracts
// the subject, email and name claims.
func (v *OIDCVerifier) Verify(ctx context.Context, rawAssertion string) (*Identity, error) {
	idToken, err := v.verifier.Verify(ctx, rawAssertion)
	if err != nil {
		return nil, fmt.Errorf("assertion verification failed: %w", err)
	}

	var claims struct {
		Subject string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("assertion claims parse failed: %w", err)
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, errors.New("assertion missing required claims")
	}

	return &Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}
