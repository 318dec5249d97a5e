package authenticator

import (
	"context"
)

// Config holds OpenID Connect verification configuration
type Config struct {
	IssuerURL string
	ClientID  string
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Identity is an authenticated caller. It is usable as a journal actor.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// IdentityID returns the token subject
func (i *Identity) IdentityID() string { return i.Subject }

// String returns the most readable identifier available
func (i *Identity) String() string {
	switch {
	case i.Email != "":
		return i.Email
	case i.Name != "":
		return i.Name
	}
	return i.Subject
}

// Verifier turns a raw bearer token into an identity
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}
