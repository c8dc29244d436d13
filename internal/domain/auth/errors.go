package auth

import "errors"

var (
	ErrInvalidState    = errors.New("oauth state mismatch")
	ErrEmailNotAllowed = errors.New("google account email is not verified")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrTokenExpired    = errors.New("token has expired")
	ErrNotAdmin        = errors.New("only admins can impersonate a role")
)
