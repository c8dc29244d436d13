package report

import (
	"context"
	"time"
)

// Repository defines data access for incident reports
type Repository interface {
	// Create appends a report
	Create(ctx context.Context, report IncidentReport) (IncidentReport, error)

	// CreateAbsenceOnce appends an automatic_absence report unless one
	// already exists for the same intern and calendar day, in which case
	// it returns ErrAbsenceAlreadyReported
	CreateAbsenceOnce(ctx context.Context, report IncidentReport) (IncidentReport, error)

	ListByIntern(ctx context.Context, internID string) ([]IncidentReport, error)
	ListRecent(ctx context.Context, limit int) ([]IncidentReport, error)

	// HasAbsenceFor reports whether an absence was already filed for the
	// intern on the given day
	HasAbsenceFor(ctx context.Context, internID string, date time.Time) (bool, error)
}
