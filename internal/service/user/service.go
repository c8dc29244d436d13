package user

import (
	"context"
	"fmt"

	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/accrual"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/catalog"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/database"
	"github.com/nexus-ceredi/nexus-backend-go/internal/repository/postgresql"
)

type UserServiceImpl struct {
	db          *database.DB
	userRepo    user.Repository
	catalogRepo catalog.Repository
	accrualRepo accrual.Repository
}

func NewUserService(
	db *database.DB,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	accrualRepo accrual.Repository,
) user.Service {
	return &UserServiceImpl{
		db:          db,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		accrualRepo: accrualRepo,
	}
}

// GetProfile implements user.Service.
func (u *UserServiceImpl) GetProfile(ctx context.Context, id string) (user.ProfileResponse, error) {
	profile, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	return user.ToProfileResponse(profile), nil
}

// CompleteRegistration implements user.Service.
func (u *UserServiceImpl) CompleteRegistration(ctx context.Context, req user.CompleteRegistrationRequest) (user.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	profile, err := u.userRepo.CompleteRegistration(ctx, req.UserID, req.Name, req.Phone, req.RequestedRole)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.ToProfileResponse(profile), nil
}

// AssignRole implements user.Service. Role, service and activation land in
// one transaction; an intern also gets its zero accrual row there, so a
// half-assigned profile can never exist.
func (u *UserServiceImpl) AssignRole(ctx context.Context, req user.AssignRoleRequest) (user.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	var serviceID *string
	if req.Role != user.RoleAdmin {
		svc, err := u.catalogRepo.GetByID(ctx, req.ServiceID)
		if err != nil {
			return user.ProfileResponse{}, err
		}
		serviceID = &svc.ID
	}

	var assigned user.Profile
	err := postgresql.WithTransaction(ctx, u.db, func(txCtx context.Context) error {
		profile, err := u.userRepo.Assign(txCtx, req.UserID, req.Role, serviceID)
		if err != nil {
			return err
		}

		if req.Role == user.RoleIntern {
			if err := u.accrualRepo.Init(txCtx, profile.ID, *serviceID); err != nil {
				return fmt.Errorf("failed to seed accrual: %w", err)
			}
		}

		assigned = profile
		return nil
	})
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.ToProfileResponse(assigned), nil
}

// SetWeeklySchedule implements user.Service.
func (u *UserServiceImpl) SetWeeklySchedule(ctx context.Context, req user.SetWeeklyScheduleRequest) (user.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	profile, err := u.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	if profile.Role != user.RoleIntern {
		return user.ProfileResponse{}, user.ErrNotAnIntern
	}

	if err := u.userRepo.SetWeeklySchedule(ctx, req.UserID, req.Schedule); err != nil {
		return user.ProfileResponse{}, err
	}

	updated, err := u.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.ToProfileResponse(updated), nil
}

// ListStaff implements user.Service.
func (u *UserServiceImpl) ListStaff(ctx context.Context, serviceID *string) (user.ListProfilesResponse, error) {
	var staff []user.Profile
	for _, role := range user.StaffRoles {
		profiles, err := u.userRepo.ListByRole(ctx, role, serviceID)
		if err != nil {
			return user.ListProfilesResponse{}, err
		}
		staff = append(staff, profiles...)
	}
	return user.ToListProfilesResponse(staff), nil
}

// ListInterns implements user.Service.
func (u *UserServiceImpl) ListInterns(ctx context.Context, serviceID *string) (user.ListProfilesResponse, error) {
	profiles, err := u.userRepo.ListByRole(ctx, user.RoleIntern, serviceID)
	if err != nil {
		return user.ListProfilesResponse{}, err
	}
	return user.ToListProfilesResponse(profiles), nil
}

// ListPendingAssignment implements user.Service.
func (u *UserServiceImpl) ListPendingAssignment(ctx context.Context) (user.ListProfilesResponse, error) {
	profiles, err := u.userRepo.ListPendingAssignment(ctx)
	if err != nil {
		return user.ListProfilesResponse{}, err
	}
	return user.ToListProfilesResponse(profiles), nil
}
