package user

import (
	"context"

	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/schedule"
)

// Repository defines data access for profiles
type Repository interface {
	// UpsertFromGoogle creates the profile on first sign-in or refreshes
	// the Google snapshot (email, photo) on later ones; the stored name is
	// the user's own once registration completes, so it is never overwritten
	UpsertFromGoogle(ctx context.Context, googleID, email, name string, photoURL *string) (Profile, error)

	GetByID(ctx context.Context, id string) (Profile, error)

	// CompleteRegistration moves a pending_registration profile to
	// pending_assignment with the user's details
	CompleteRegistration(ctx context.Context, id, name, phone, requestedRole string) (Profile, error)

	// Assign sets role, service and active status in one statement; for
	// admins serviceID is nil
	Assign(ctx context.Context, id, role string, serviceID *string) (Profile, error)

	SetWeeklySchedule(ctx context.Context, id string, ws schedule.WeeklySchedule) error

	// ListByRole returns active profiles with the given role, optionally
	// narrowed to one service
	ListByRole(ctx context.Context, role string, serviceID *string) ([]Profile, error)

	// ListPendingAssignment returns the admin's assignment queue
	ListPendingAssignment(ctx context.Context) ([]Profile, error)

	// ListActiveInterns returns every active intern with a stored weekly
	// schedule, for the absence audit
	ListActiveInterns(ctx context.Context) ([]Profile, error)

	// CountByService reports how many profiles reference a service, to
	// guard catalog deletion
	CountByService(ctx context.Context, serviceID string) (int, error)
}
