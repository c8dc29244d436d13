package report

import "time"

// Gravities, in the wording the existing data uses.
const (
	GravityLeve     = "leve"
	GravityModerada = "moderada"
	GravityGrave    = "grave"
)

// Kinds
const (
	KindConduct          = "conduct"
	KindAutomaticAbsence = "automatic_absence"
	KindAccrualFailure   = "accrual_failure"
)

// Author identity stamped on audit-generated reports.
const (
	SystemAuthorID   = "SISTEMA"
	SystemAuthorName = "Auditoría Automática"
)

// IncidentReport is append-only: reports are filed, listed, and never
// edited or removed.
type IncidentReport struct {
	ID          string
	Kind        string
	Gravity     string
	InternID    string
	InternName  string
	ServiceID   *string
	ServiceName *string
	AuthorID    string
	AuthorName  string
	Description string

	// AbsenceDate is set only on automatic_absence reports and backs
	// their one-per-day dedup rule.
	AbsenceDate *time.Time

	CreatedAt time.Time
}
