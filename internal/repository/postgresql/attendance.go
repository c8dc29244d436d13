package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/attendance"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, year, month_bucket, intern_id, intern_name, intern_photo_url,
	service_id, service_name, supervisor_id, supervisor_name,
	entry_at, exit_at, status, session_hours, punctuality, schedule_window,
	validated_at, validated_by, admin_forced, created_at, updated_at
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var r attendance.Record
	err := row.Scan(
		&r.ID, &r.Year, &r.MonthBucket, &r.InternID, &r.InternName, &r.InternPhotoURL,
		&r.ServiceID, &r.ServiceName, &r.SupervisorID, &r.SupervisorName,
		&r.EntryAt, &r.ExitAt, &r.Status, &r.SessionHours, &r.Punctuality, &r.ScheduleWindow,
		&r.ValidatedAt, &r.ValidatedBy, &r.AdminForced, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CreateGuarded implements attendance.Repository. The NOT EXISTS guard
// rejects sequential duplicates, and the partial unique index on
// (intern_id, UTC entry date) over open statuses catches the remaining
// race: two check-ins inside the same statement snapshot both pass the
// guard, but only one survives the index.
func (a *attendanceRepository) CreateGuarded(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, year, month_bucket, intern_id, intern_name, intern_photo_url,
			service_id, service_name, supervisor_id, supervisor_name,
			entry_at, status, punctuality, schedule_window
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE intern_id = $4
			  AND (entry_at AT TIME ZONE 'UTC')::date = ($11 AT TIME ZONE 'UTC')::date
			  AND status IN ('pending_entry', 'approved', 'pending_exit')
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		r.ID, r.Year, r.MonthBucket, r.InternID, r.InternName, r.InternPhotoURL,
		r.ServiceID, r.ServiceName, r.SupervisorID, r.SupervisorName,
		r.EntryAt, r.Status, r.Punctuality, r.ScheduleWindow,
	).Scan(&r.CreatedAt, &r.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrDuplicateOpenSession
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrDuplicateOpenSession
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return r, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id, year, monthBucket string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE id = $1 AND year = $2 AND month_bucket = $3
	`

	r, err := scanRecord(q.QueryRow(ctx, query, id, year, monthBucket))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return r, nil
}

// GetByIDForUpdate implements attendance.Repository.
func (a *attendanceRepository) GetByIDForUpdate(ctx context.Context, id, year, monthBucket string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE id = $1 AND year = $2 AND month_bucket = $3
		FOR UPDATE
	`

	r, err := scanRecord(q.QueryRow(ctx, query, id, year, monthBucket))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to lock attendance record: %w", err)
	}

	return r, nil
}

// UpdateStatusCAS implements attendance.Repository.
func (a *attendanceRepository) UpdateStatusCAS(ctx context.Context, id, year, monthBucket, fromStatus, toStatus string, validatedBy *string, validatedAt *time.Time) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET status = $4,
		    validated_by = COALESCE($5, validated_by),
		    validated_at = COALESCE($6, validated_at),
		    updated_at = NOW()
		WHERE id = $1 AND year = $2 AND month_bucket = $3
		  AND status = $7
	`

	tag, err := q.Exec(ctx, query, id, year, monthBucket, toStatus, validatedBy, validatedAt, fromStatus)
	if err != nil {
		return fmt.Errorf("failed to update attendance status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrInvalidStateTransition
	}

	return nil
}

// MarkExitRequested implements attendance.Repository.
func (a *attendanceRepository) MarkExitRequested(ctx context.Context, id, year, monthBucket string, exitAt time.Time) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET exit_at = $4, status = 'pending_exit', updated_at = NOW()
		WHERE id = $1 AND year = $2 AND month_bucket = $3
		  AND status = 'approved'
	`

	tag, err := q.Exec(ctx, query, id, year, monthBucket, exitAt)
	if err != nil {
		return fmt.Errorf("failed to mark exit requested: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrInvalidStateTransition
	}

	return nil
}

// Finalize implements attendance.Repository. Callers hold the row lock and
// have already verified the status gate; the WHERE clause re-checks it so a
// missed gate surfaces as ErrInvalidStateTransition instead of a lost update.
func (a *attendanceRepository) Finalize(ctx context.Context, r attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET exit_at = $4,
		    session_hours = $5,
		    status = 'finalized',
		    validated_at = $6,
		    validated_by = $7,
		    admin_forced = $8,
		    updated_at = NOW()
		WHERE id = $1 AND year = $2 AND month_bucket = $3
		  AND status IN ('pending_entry', 'approved', 'pending_exit')
	`

	tag, err := q.Exec(ctx, query,
		r.ID, r.Year, r.MonthBucket,
		r.ExitAt, r.SessionHours, r.ValidatedAt, r.ValidatedBy, r.AdminForced,
	)
	if err != nil {
		return fmt.Errorf("failed to finalize attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrInvalidStateTransition
	}

	return nil
}

// Delete implements attendance.Repository.
func (a *attendanceRepository) Delete(ctx context.Context, id, year, monthBucket string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM attendance_records
		WHERE id = $1 AND year = $2 AND month_bucket = $3
	`, id, year, monthBucket)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// ListMonth implements attendance.Repository. Ordering lives here, not in
// the service layer.
func (a *attendanceRepository) ListMonth(ctx context.Context, filter attendance.MonthFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE year = $1 AND month_bucket = $2
	`
	args := []interface{}{filter.Year, filter.Bucket()}

	if filter.ServiceID != "" {
		args = append(args, filter.ServiceID)
		query += fmt.Sprintf(" AND service_id = $%d", len(args))
	}
	if filter.InternID != "" {
		args = append(args, filter.InternID)
		query += fmt.Sprintf(" AND intern_id = $%d", len(args))
	}
	if filter.SupervisorID != "" {
		args = append(args, filter.SupervisorID)
		query += fmt.Sprintf(" AND supervisor_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY entry_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return collectRecords(rows)
}

// ListByIntern implements attendance.Repository.
func (a *attendanceRepository) ListByIntern(ctx context.Context, internID, year, monthBucket string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE intern_id = $1 AND year = $2 AND month_bucket = $3
		ORDER BY entry_at DESC
	`, internID, year, monthBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to list intern attendance: %w", err)
	}

	return collectRecords(rows)
}

// ListPendingForSupervisor implements attendance.Repository.
func (a *attendanceRepository) ListPendingForSupervisor(ctx context.Context, supervisorID, year, monthBucket string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE supervisor_id = $1 AND year = $2 AND month_bucket = $3
		  AND status IN ('pending_entry', 'pending_exit')
		ORDER BY entry_at ASC
	`, supervisorID, year, monthBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending records: %w", err)
	}

	return collectRecords(rows)
}

// InternsPresentOn implements attendance.Repository.
func (a *attendanceRepository) InternsPresentOn(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, a.db)

	year, bucket := attendance.Partition(date)
	rows, err := q.Query(ctx, `
		SELECT DISTINCT intern_id
		FROM attendance_records
		WHERE year = $1 AND month_bucket = $2
		  AND (entry_at AT TIME ZONE 'UTC')::date = ($3 AT TIME ZONE 'UTC')::date
	`, year, bucket, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list present interns: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan intern id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
