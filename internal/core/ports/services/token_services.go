package services

import (
	"context"
	"time"

	"github.com/assogestion/assogestion/internal/core/domain"
)

// TokenSvcFacade handles JWT access tokens and refresh token rotation.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateAndParseRefreshToken checks the presented refresh token against
	// the stored hash and expiry for the user.
	ValidateAndParseRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade handles the Google sign-in flow.
type GoogleOAuthSvcFacade interface {
	// LoginURL returns the Google consent page URL for the given CSRF state.
	LoginURL(state string) string
	// ExchangeAndVerify exchanges the authorization code and verifies the ID
	// token, returning the asserted identity.
	ExchangeAndVerify(ctx context.Context, code string) (*GoogleIdentity, error)
}

// GoogleIdentity is the verified identity asserted by Google.
type GoogleIdentity struct {
	ProviderUserID string
	Email          string
	Name           string
}
