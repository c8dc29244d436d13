package user

import "errors"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrProfileNotActive = errors.New("profile is not active yet")
	ErrNotAnIntern      = errors.New("profile is not an intern")
	ErrEmailTaken       = errors.New("email is already registered")
	ErrServiceRequired  = errors.New("a service must be assigned for this role")
	ErrInvalidRole      = errors.New("unknown role")
	ErrInvalidSchedule  = errors.New("invalid weekly schedule")
)
