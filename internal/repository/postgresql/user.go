package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/schedule"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

const profileColumns = `
	p.id, p.google_id, p.email, p.name, p.photo_url, p.phone,
	p.role, p.account_status, p.requested_role,
	p.service_id, s.name, p.weekly_schedule,
	p.created_at, p.updated_at
`

const profileFrom = `
	FROM profiles p
	LEFT JOIN services s ON s.id = p.service_id
`

func scanProfile(row pgx.Row) (user.Profile, error) {
	var p user.Profile
	err := row.Scan(
		&p.ID, &p.GoogleID, &p.Email, &p.Name, &p.PhotoURL, &p.Phone,
		&p.Role, &p.AccountStatus, &p.RequestedRole,
		&p.ServiceID, &p.ServiceName, &p.WeeklySchedule,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func collectProfiles(rows pgx.Rows) ([]user.Profile, error) {
	defer rows.Close()

	var profiles []user.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// UpsertFromGoogle implements user.Repository. New sign-ins start in
// pending_registration with the unassigned role; returning ones only get
// their Google snapshot refreshed.
func (u *userRepository) UpsertFromGoogle(ctx context.Context, googleID, email, name string, photoURL *string) (user.Profile, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO profiles (id, google_id, email, name, photo_url, role, account_status, weekly_schedule)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, 'unassigned', 'pending_registration', '{}'::jsonb)
		ON CONFLICT (google_id) DO UPDATE
		SET email = EXCLUDED.email,
		    photo_url = EXCLUDED.photo_url,
		    updated_at = NOW()
		RETURNING id
	`

	var id string
	if err := q.QueryRow(ctx, query, googleID, email, name, photoURL).Scan(&id); err != nil {
		return user.Profile{}, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return u.GetByID(ctx, id)
}

// GetByID implements user.Repository.
func (u *userRepository) GetByID(ctx context.Context, id string) (user.Profile, error) {
	q := GetQuerier(ctx, u.db)

	p, err := scanProfile(q.QueryRow(ctx, `SELECT `+profileColumns+profileFrom+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// CompleteRegistration implements user.Repository.
func (u *userRepository) CompleteRegistration(ctx context.Context, id, name, phone, requestedRole string) (user.Profile, error) {
	q := GetQuerier(ctx, u.db)

	tag, err := q.Exec(ctx, `
		UPDATE profiles
		SET name = $2, phone = $3, requested_role = $4,
		    account_status = 'pending_assignment', updated_at = NOW()
		WHERE id = $1 AND account_status = 'pending_registration'
	`, id, name, phone, requestedRole)
	if err != nil {
		return user.Profile{}, fmt.Errorf("failed to complete registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.Profile{}, user.ErrProfileNotFound
	}

	return u.GetByID(ctx, id)
}

// Assign implements user.Repository.
func (u *userRepository) Assign(ctx context.Context, id, role string, serviceID *string) (user.Profile, error) {
	q := GetQuerier(ctx, u.db)

	tag, err := q.Exec(ctx, `
		UPDATE profiles
		SET role = $2, service_id = $3, account_status = 'active', updated_at = NOW()
		WHERE id = $1
	`, id, role, serviceID)
	if err != nil {
		return user.Profile{}, fmt.Errorf("failed to assign role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.Profile{}, user.ErrProfileNotFound
	}

	return u.GetByID(ctx, id)
}

// SetWeeklySchedule implements user.Repository.
func (u *userRepository) SetWeeklySchedule(ctx context.Context, id string, ws schedule.WeeklySchedule) error {
	q := GetQuerier(ctx, u.db)

	tag, err := q.Exec(ctx, `
		UPDATE profiles
		SET weekly_schedule = $2, updated_at = NOW()
		WHERE id = $1
	`, id, ws)
	if err != nil {
		return fmt.Errorf("failed to set weekly schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrProfileNotFound
	}

	return nil
}

// ListByRole implements user.Repository.
func (u *userRepository) ListByRole(ctx context.Context, role string, serviceID *string) ([]user.Profile, error) {
	q := GetQuerier(ctx, u.db)

	query := `SELECT ` + profileColumns + profileFrom + `
		WHERE p.role = $1 AND p.account_status = 'active'`
	args := []interface{}{role}

	if serviceID != nil {
		args = append(args, *serviceID)
		query += fmt.Sprintf(" AND p.service_id = $%d", len(args))
	}
	query += " ORDER BY p.name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles by role: %w", err)
	}

	return collectProfiles(rows)
}

// ListPendingAssignment implements user.Repository.
func (u *userRepository) ListPendingAssignment(ctx context.Context) ([]user.Profile, error) {
	q := GetQuerier(ctx, u.db)

	rows, err := q.Query(ctx, `
		SELECT `+profileColumns+profileFrom+`
		WHERE p.account_status = 'pending_assignment'
		ORDER BY p.created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending profiles: %w", err)
	}

	return collectProfiles(rows)
}

// ListActiveInterns implements user.Repository.
func (u *userRepository) ListActiveInterns(ctx context.Context) ([]user.Profile, error) {
	q := GetQuerier(ctx, u.db)

	rows, err := q.Query(ctx, `
		SELECT `+profileColumns+profileFrom+`
		WHERE p.role = 'intern' AND p.account_status = 'active'
		  AND p.weekly_schedule <> '{}'::jsonb
		ORDER BY p.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active interns: %w", err)
	}

	return collectProfiles(rows)
}

// CountByService implements user.Repository.
func (u *userRepository) CountByService(ctx context.Context, serviceID string) (int, error) {
	q := GetQuerier(ctx, u.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM profiles WHERE service_id = $1`, serviceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles by service: %w", err)
	}

	return count, nil
}
