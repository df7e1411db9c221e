// Package federated verifies identity assertions issued by an external
// identity provider. Implementations return identity facts only; account
// creation and token issuance stay with the identity service.
package federated

import (
	"context"
	"errors"
)

// Identity is the normalized result of a verified assertion.
type Identity struct {
	// Subject is the provider-scoped unique user identifier ("sub").
	Subject string
	// Email is the address the provider asserts for the user.
	Email string
	// Name is the display name, when the provider supplies one.
	Name string
}

// Verifier checks a raw identity assertion (signature, audience, expiry) and
// returns the identity it attests to. Any verification failure is returned as
// an error; the caller maps it to the authentication failure taxonomy.
type Verifier interface {
	Verify(ctx context.Context, rawAssertion string) (*Identity, error)
}

// Unconfigured rejects every assertion. It stands in when no identity
// provider audience is configured.
type Unconfigured struct{}

func (Unconfigured) Verify(ctx context.Context, rawAssertion string) (*Identity, error) {
	return nil, errors.New("federated identity provider is not configured")
}
