package auth

import "context"

// AuthService defines the Google sign-in flow and token lifecycle
type AuthService interface {
	// LoginWithGoogle returns the Google consent redirect URL for a fresh
	// state
	LoginWithGoogle(ctx context.Context, userAgent string) (string, error)

	// OAuthCallbackGoogle exchanges the callback code, upserts the
	// profile and issues the token pair
	OAuthCallbackGoogle(ctx context.Context, state, code, userAgent string) (TokenResponse, error)

	// RefreshToken trades a valid refresh token for a new access token
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Impersonate issues a short-lived access token carrying an act_as
	// role claim; admin only
	Impersonate(ctx context.Context, req ImpersonateRequest) (ImpersonateResponse, error)

	// SSEToken issues the short-lived token the events endpoint accepts
	// as a query parameter
	SSEToken(ctx context.Context, userID string) (AccessTokenResponse, error)
}
