package auth

import (
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/validator"
)

type TokenResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	Profile      user.ProfileResponse `json:"profile"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ImpersonateRequest struct {
	AdminID string `json:"-"`
	ActAs   string `json:"act_as"`
}

func (r *ImpersonateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.ActAs, []string{
		user.RoleServiceHead, user.RoleProfessional, user.RoleIntern,
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "act_as",
			Message: "act_as must be service_head, professional or intern",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ImpersonateResponse carries a short-lived token whose claims act as the
// requested role. The admin's stored profile is never modified.
type ImpersonateResponse struct {
	AccessToken string `json:"access_token"`
	ActAs       string `json:"act_as"`
	ExpiresIn   int64  `json:"expires_in"`
}
