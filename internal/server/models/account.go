// Package models contains the persistent entities of the Loan Gate backend.
package models

import "time"

// CredentialKind tags the variant of credential an account carries.
type CredentialKind string

const (
	// CredentialLocal marks an account with a password digest.
	CredentialLocal CredentialKind = "local"
	// CredentialFederated marks an account authenticated through an external
	// identity provider; it carries the provider's subject id and no digest.
	CredentialFederated CredentialKind = "federated"
)

// Account is an authenticated identity record. Email uniquely identifies at
// most one account. Exactly one of PasswordDigest / FederatedSubject is set,
// depending on CredentialKind.
type Account struct {
	ID               string
	Name             string
	Email            string
	CredentialKind   CredentialKind
	PasswordDigest   string
	FederatedSubject string
	CreatedAt        time.Time
}

// Federated reports whether the account authenticates through an external
// identity provider.
func (a *Account) Federated() bool {
	return a.CredentialKind == CredentialFederated
}
