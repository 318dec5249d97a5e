package authenticator

import (
	"context"
	"errors"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OpenIDVerifier verifies ID tokens issued by an OpenID Connect provider
type OpenIDVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOpenIDVerifier discovers the provider at cfg.IssuerURL and creates a
// verifier for tokens issued to cfg.ClientID
func NewOpenIDVerifier(ctx context.Context, cfg Config) (*OpenIDVerifier, error) {
	// Validate required configuration
	if cfg.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, err
	}

	return &OpenIDVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

// NewOpenIDVerifierWithKeys creates a verifier with a fixed key set, for
// issuers without discovery
func NewOpenIDVerifierWithKeys(cfg Config, keys oidc.KeySet) *OpenIDVerifier {
	return &OpenIDVerifier{
		verifier: oidc.NewVerifier(cfg.IssuerURL, keys, &oidc.Config{ClientID: cfg.ClientID}),
	}
}

// Verify checks signature, issuer, audience and expiry of rawToken and
// extracts the identity claims
func (v *OpenIDVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	if rawToken == "" {
		return nil, errors.New("no id_token in request")
	}

	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}

	identity := &Identity{Subject: idToken.Subject}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	return identity, nil
}
