package auth

import (
	"context"

	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/auth"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/jwt"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	userRepo      user.Repository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, userAgent string) (string, error) {
	state := a.googleService.GenerateState(userAgent)
	if state == "" {
		return "", auth.ErrInvalidState
	}
	return a.googleService.RedirectURL(state), nil
}

// OAuthCallbackGoogle implements auth.AuthService. The state carries the
// originating user agent; a mismatch means the callback was not started by
// this client.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, state, code, userAgent string) (auth.TokenResponse, error) {
	if !oauth.ValidateState(state, userAgent) {
		return auth.TokenResponse{}, auth.ErrInvalidState
	}

	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrEmailNotAllowed
	}

	var photo *string
	if info.Picture != "" {
		photo = &info.Picture
	}

	profile, err := a.userRepo.UpsertFromGoogle(ctx, info.GoogleID, info.Email, info.Name, photo)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	accessToken, _, err := a.jwtService.GenerateAccessToken(profile.ID, profile.Email, profile.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	refreshToken, _, err := a.jwtService.GenerateRefreshToken(profile.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      user.ToProfileResponse(profile),
	}, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	userID, err := a.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	profile, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	accessToken, _, err := a.jwtService.GenerateAccessToken(profile.ID, profile.Email, profile.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	return auth.AccessTokenResponse{AccessToken: accessToken}, nil
}

// Impersonate implements auth.AuthService. The admin's profile row is never
// touched; the borrowed role lives only in the issued token.
func (a *AuthServiceImpl) Impersonate(ctx context.Context, req auth.ImpersonateRequest) (auth.ImpersonateResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.ImpersonateResponse{}, err
	}

	admin, err := a.userRepo.GetByID(ctx, req.AdminID)
	if err != nil {
		return auth.ImpersonateResponse{}, err
	}
	if admin.Role != user.RoleAdmin {
		return auth.ImpersonateResponse{}, auth.ErrNotAdmin
	}

	token, expiresIn, err := a.jwtService.GenerateImpersonationToken(admin.ID, admin.Email, admin.Role, req.ActAs)
	if err != nil {
		return auth.ImpersonateResponse{}, err
	}

	return auth.ImpersonateResponse{
		AccessToken: token,
		ActAs:       req.ActAs,
		ExpiresIn:   expiresIn,
	}, nil
}

// SSEToken implements auth.AuthService.
func (a *AuthServiceImpl) SSEToken(ctx context.Context, userID string) (auth.AccessTokenResponse, error) {
	token, _, err := a.jwtService.GenerateSSEToken(userID)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	return auth.AccessTokenResponse{AccessToken: token}, nil
}
