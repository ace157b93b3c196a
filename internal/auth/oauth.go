package auth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"ticketeiro/internal/config"
)

// GoogleProfile is the subset of the ID-token claims the registration
// flow needs.
type GoogleProfile struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type GoogleVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewGoogleVerifier builds a verifier against the Google issuer. It
// performs discovery once at startup.
func NewGoogleVerifier(ctx context.Context, cfg config.AuthConfig) (*GoogleVerifier, error) {
	provider, err := oidc.NewProvider(ctx, cfg.GoogleIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	return &GoogleVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.GoogleClientID}),
	}, nil
}

// VerifyIDToken checks the raw ID token's signature, audience and
// expiry, and extracts the profile claims.
func (g *GoogleVerifier) VerifyIDToken(ctx context.Context, rawToken string) (*GoogleProfile, error) {
	idToken, err := g.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("invalid ID token: %w", err)
	}

	var claims struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to parse claims: %w", err)
	}

	return &GoogleProfile{
		Subject: idToken.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}
