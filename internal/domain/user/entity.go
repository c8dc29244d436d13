package user

import (
	"time"

	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/schedule"
)

// Roles
const (
	RoleAdmin        = "admin"
	RoleServiceHead  = "service_head"
	RoleProfessional = "professional"
	RoleIntern       = "intern"
	RoleUnassigned   = "unassigned"
)

// StaffRoles are the roles allowed to supervise attendance records.
var StaffRoles = []string{RoleServiceHead, RoleProfessional}

// Account statuses. A profile moves pending_registration ->
// pending_assignment -> active; only active profiles participate in
// attendance.
const (
	StatusPendingRegistration = "pending_registration"
	StatusPendingAssignment   = "pending_assignment"
	StatusActive              = "active"
)

type Profile struct {
	ID       string
	GoogleID string
	Email    string
	Name     string
	PhotoURL *string
	Phone    *string

	Role          string
	AccountStatus string

	// RequestedRole is what the user asked for during registration; the
	// admin's assignment decision is authoritative.
	RequestedRole *string

	ServiceID   *string
	ServiceName *string

	WeeklySchedule schedule.WeeklySchedule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the profile may produce or validate attendance.
func (p Profile) IsActive() bool {
	return p.AccountStatus == StatusActive
}

// IsStaff reports whether the profile's role can supervise records.
func (p Profile) IsStaff() bool {
	for _, r := range StaffRoles {
		if p.Role == r {
			return true
		}
	}
	return false
}
