package user

import (
	"time"

	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/schedule"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/validator"
)

// ========================================
// USER DTOs
// ========================================

type CompleteRegistrationRequest struct {
	UserID        string `json:"-"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	RequestedRole string `json:"requested_role"`
}

func (r *CompleteRegistrationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	}

	if !validator.IsInSlice(r.RequestedRole, []string{RoleServiceHead, RoleProfessional, RoleIntern}) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_role",
			Message: "requested_role must be service_head, professional or intern",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignRoleRequest struct {
	UserID    string `json:"-"`
	Role      string `json:"role"`
	ServiceID string `json:"service_id"`
}

func (r *AssignRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Role, []string{RoleAdmin, RoleServiceHead, RoleProfessional, RoleIntern}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin, service_head, professional or intern",
		})
	}

	// Admins float above the service catalog; everyone else is anchored
	// to exactly one service.
	if r.Role != RoleAdmin && validator.IsEmpty(r.ServiceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "service_id",
			Message: "service_id is required for this role",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetWeeklyScheduleRequest struct {
	UserID   string                  `json:"-"`
	Schedule schedule.WeeklySchedule `json:"schedule"`
}

func (r *SetWeeklyScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	for day, cfg := range r.Schedule {
		if !schedule.IsValidDayName(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "schedule",
				Message: "unknown day name: " + day,
			})
			continue
		}
		if !cfg.Active {
			continue
		}
		if !validator.IsValidTimeOfDay(cfg.Entry) {
			errs = append(errs, validator.ValidationError{
				Field:   "schedule." + day + ".entry",
				Message: "entry must be HH:MM",
			})
		}
		if !validator.IsValidTimeOfDay(cfg.Exit) {
			errs = append(errs, validator.ValidationError{
				Field:   "schedule." + day + ".exit",
				Message: "exit must be HH:MM",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProfileResponse struct {
	ID             string                  `json:"id"`
	Email          string                  `json:"email"`
	Name           string                  `json:"name"`
	PhotoURL       *string                 `json:"photo_url,omitempty"`
	Phone          *string                 `json:"phone,omitempty"`
	Role           string                  `json:"role"`
	AccountStatus  string                  `json:"account_status"`
	RequestedRole  *string                 `json:"requested_role,omitempty"`
	ServiceID      *string                 `json:"service_id,omitempty"`
	ServiceName    *string                 `json:"service_name,omitempty"`
	WeeklySchedule schedule.WeeklySchedule `json:"weekly_schedule,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

func ToProfileResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		Email:          p.Email,
		Name:           p.Name,
		PhotoURL:       p.PhotoURL,
		Phone:          p.Phone,
		Role:           p.Role,
		AccountStatus:  p.AccountStatus,
		RequestedRole:  p.RequestedRole,
		ServiceID:      p.ServiceID,
		ServiceName:    p.ServiceName,
		WeeklySchedule: p.WeeklySchedule,
		CreatedAt:      p.CreatedAt,
	}
}

type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int               `json:"total"`
}

func ToListProfilesResponse(profiles []Profile) ListProfilesResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ToProfileResponse(p))
	}
	return ListProfilesResponse{Profiles: out, Total: len(out)}
}
