package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/report"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

const reportColumns = `
	id, kind, gravity, intern_id, intern_name, service_id, service_name,
	author_id, author_name, description, absence_date, created_at
`

func scanReport(row pgx.Row) (report.IncidentReport, error) {
	var r report.IncidentReport
	err := row.Scan(
		&r.ID, &r.Kind, &r.Gravity, &r.InternID, &r.InternName, &r.ServiceID, &r.ServiceName,
		&r.AuthorID, &r.AuthorName, &r.Description, &r.AbsenceDate, &r.CreatedAt,
	)
	return r, err
}

func collectReports(rows pgx.Rows) ([]report.IncidentReport, error) {
	defer rows.Close()

	var reports []report.IncidentReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// Create implements report.Repository.
func (rp *reportRepository) Create(ctx context.Context, r report.IncidentReport) (report.IncidentReport, error) {
	q := GetQuerier(ctx, rp.db)

	err := q.QueryRow(ctx, `
		INSERT INTO incident_reports (
			id, kind, gravity, intern_id, intern_name, service_id, service_name,
			author_id, author_name, description, absence_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`,
		r.ID, r.Kind, r.Gravity, r.InternID, r.InternName, r.ServiceID, r.ServiceName,
		r.AuthorID, r.AuthorName, r.Description, r.AbsenceDate,
	).Scan(&r.CreatedAt)
	if err != nil {
		return report.IncidentReport{}, fmt.Errorf("failed to create incident report: %w", err)
	}

	return r, nil
}

// CreateAbsenceOnce implements report.Repository. The dedup condition runs
// inside the INSERT so concurrent audit runs cannot file the same absence
// twice.
func (rp *reportRepository) CreateAbsenceOnce(ctx context.Context, r report.IncidentReport) (report.IncidentReport, error) {
	q := GetQuerier(ctx, rp.db)

	err := q.QueryRow(ctx, `
		INSERT INTO incident_reports (
			id, kind, gravity, intern_id, intern_name, service_id, service_name,
			author_id, author_name, description, absence_date
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		WHERE NOT EXISTS (
			SELECT 1 FROM incident_reports
			WHERE kind = $2 AND intern_id = $4 AND absence_date = $11
		)
		RETURNING created_at
	`,
		r.ID, r.Kind, r.Gravity, r.InternID, r.InternName, r.ServiceID, r.ServiceName,
		r.AuthorID, r.AuthorName, r.Description, r.AbsenceDate,
	).Scan(&r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.IncidentReport{}, report.ErrAbsenceAlreadyReported
		}
		return report.IncidentReport{}, fmt.Errorf("failed to create absence report: %w", err)
	}

	return r, nil
}

// ListByIntern implements report.Repository.
func (rp *reportRepository) ListByIntern(ctx context.Context, internID string) ([]report.IncidentReport, error) {
	q := GetQuerier(ctx, rp.db)

	rows, err := q.Query(ctx, `
		SELECT `+reportColumns+`
		FROM incident_reports
		WHERE intern_id = $1
		ORDER BY created_at DESC
	`, internID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by intern: %w", err)
	}

	return collectReports(rows)
}

// ListRecent implements report.Repository.
func (rp *reportRepository) ListRecent(ctx context.Context, limit int) ([]report.IncidentReport, error) {
	q := GetQuerier(ctx, rp.db)

	rows, err := q.Query(ctx, `
		SELECT `+reportColumns+`
		FROM incident_reports
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent reports: %w", err)
	}

	return collectReports(rows)
}

// HasAbsenceFor implements report.Repository.
func (rp *reportRepository) HasAbsenceFor(ctx context.Context, internID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, rp.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM incident_reports
			WHERE kind = 'automatic_absence' AND intern_id = $1 AND absence_date = $2::date
		)
	`, internID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check absence report: %w", err)
	}

	return exists, nil
}
