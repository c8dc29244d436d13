package user

import "context"

// Service defines business logic for the profile lifecycle
type Service interface {
	// GetProfile retrieves the authenticated user's own profile
	GetProfile(ctx context.Context, id string) (ProfileResponse, error)

	// CompleteRegistration finishes first-login onboarding
	CompleteRegistration(ctx context.Context, req CompleteRegistrationRequest) (ProfileResponse, error)

	// AssignRole activates a profile with a role and service in a single
	// transaction; assigning the intern role also seeds a zero accrual row
	AssignRole(ctx context.Context, req AssignRoleRequest) (ProfileResponse, error)

	// SetWeeklySchedule stores an intern's weekly obligation
	SetWeeklySchedule(ctx context.Context, req SetWeeklyScheduleRequest) (ProfileResponse, error)

	// ListStaff lists active supervisors, optionally for one service
	ListStaff(ctx context.Context, serviceID *string) (ListProfilesResponse, error)

	// ListInterns lists active interns, optionally for one service
	ListInterns(ctx context.Context, serviceID *string) (ListProfilesResponse, error)

	// ListPendingAssignment lists profiles waiting for an admin decision
	ListPendingAssignment(ctx context.Context) (ListProfilesResponse, error)
}
