package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/accrual"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/database"
)

type accrualRepository struct {
	db *database.DB
}

func NewAccrualRepository(db *database.DB) accrual.Repository {
	return &accrualRepository{db: db}
}

// Init implements accrual.Repository.
func (a *accrualRepository) Init(ctx context.Context, internID, serviceID string) error {
	q := GetQuerier(ctx, a.db)

	_, err := q.Exec(ctx, `
		INSERT INTO hour_accruals (intern_id, service_id, total_hours)
		VALUES ($1, $2, 0)
		ON CONFLICT (intern_id, service_id) DO NOTHING
	`, internID, serviceID)
	if err != nil {
		return fmt.Errorf("failed to init hour accrual: %w", err)
	}

	return nil
}

// Increment implements accrual.Repository.
func (a *accrualRepository) Increment(ctx context.Context, internID, serviceID string, delta float64, at time.Time) error {
	q := GetQuerier(ctx, a.db)

	_, err := q.Exec(ctx, `
		INSERT INTO hour_accruals (intern_id, service_id, total_hours, last_attendance_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (intern_id, service_id) DO UPDATE
		SET total_hours = hour_accruals.total_hours + EXCLUDED.total_hours,
		    last_attendance_at = EXCLUDED.last_attendance_at,
		    updated_at = NOW()
	`, internID, serviceID, delta, at)
	if err != nil {
		return fmt.Errorf("failed to increment hour accrual: %w", err)
	}

	return nil
}

// Get implements accrual.Repository.
func (a *accrualRepository) Get(ctx context.Context, internID, serviceID string) (accrual.HourAccrual, error) {
	q := GetQuerier(ctx, a.db)

	var h accrual.HourAccrual
	err := q.QueryRow(ctx, `
		SELECT intern_id, service_id, total_hours, last_attendance_at, updated_at
		FROM hour_accruals
		WHERE intern_id = $1 AND service_id = $2
	`, internID, serviceID).Scan(
		&h.InternID, &h.ServiceID, &h.TotalHours, &h.LastAttendanceAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return accrual.HourAccrual{}, accrual.ErrAccrualNotFound
		}
		return accrual.HourAccrual{}, fmt.Errorf("failed to get hour accrual: %w", err)
	}

	return h, nil
}

// ListByService implements accrual.Repository.
func (a *accrualRepository) ListByService(ctx context.Context, serviceID string) ([]accrual.HourAccrual, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, `
		SELECT intern_id, service_id, total_hours, last_attendance_at, updated_at
		FROM hour_accruals
		WHERE service_id = $1
		ORDER BY total_hours DESC
	`, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hour accruals: %w", err)
	}
	defer rows.Close()

	var accruals []accrual.HourAccrual
	for rows.Next() {
		var h accrual.HourAccrual
		if err := rows.Scan(&h.InternID, &h.ServiceID, &h.TotalHours, &h.LastAttendanceAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hour accrual: %w", err)
		}
		accruals = append(accruals, h)
	}
	return accruals, rows.Err()
}
