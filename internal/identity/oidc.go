package identity

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/easyeats/easyeats-server/internal/model"
)

var _ model.IdentityVerifier = (*OIDCVerifier)(nil)

// OIDCVerifier validates bearer tokens against an OpenID Connect issuer and
// extracts the subject claim.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the issuer configuration and prepares a token
// verifier. With an empty clientID the audience check is skipped.
func NewOIDCVerifier(ctx context.Context, issuerURL, clientID string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover oidc provider: %w", err)
	}

	conf := &oidc.Config{ClientID: clientID}
	if clientID == "" {
		conf.SkipClientIDCheck = true
	}

	return &OIDCVerifier{verifier: provider.Verifier(conf)}, nil
}

// Verify checks the token signature, expiry and audience with the issuer keys
// and returns the subject id.
func (v *OIDCVerifier) Verify(ctx context.Context, token string) (string, error) {
	idToken, err := v.verifier.Verify(ctx, token)
	if err != nil {
		return "", fmt.Errorf("failed to verify id token: %w", err)
	}
	if idToken.Subject == "" {
		return "", fmt.Errorf("id token carries no subject")
	}

	return idToken.Subject, nil
}
