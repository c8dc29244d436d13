package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/schedule"
)

// Record statuses. Transitions are monotonic:
// pending_entry -> {approved, rejected}; approved -> pending_exit;
// pending_exit -> finalized. rejected and finalized are terminal.
const (
	StatusPendingEntry = "pending_entry"
	StatusApproved     = "approved"
	StatusRejected     = "rejected"
	StatusPendingExit  = "pending_exit"
	StatusFinalized    = "finalized"
)

// OpenStatuses are the states in which a record still counts as the
// intern's open session for the day.
var OpenStatuses = []string{StatusPendingEntry, StatusApproved, StatusPendingExit}

type Record struct {
	ID string

	// Partition key, derived from EntryAt. Year is a 4-digit string,
	// MonthBucket is "<MM>_<Mes>" with the Spanish month name
	// capitalized, e.g. "02_Febrero". Existing data depends on this
	// exact shape.
	Year        string
	MonthBucket string

	InternID       string
	InternName     string
	InternPhotoURL *string

	ServiceID   string
	ServiceName string

	SupervisorID   string
	SupervisorName string

	EntryAt time.Time
	ExitAt  *time.Time

	Status       string
	SessionHours *float64

	Punctuality    schedule.PunctualityFlag
	ScheduleWindow *string

	ValidatedAt *time.Time
	ValidatedBy *string
	AdminForced bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the record still blocks a new check-in.
func (r Record) IsOpen() bool {
	switch r.Status {
	case StatusPendingEntry, StatusApproved, StatusPendingExit:
		return true
	}
	return false
}

// Spanish month names, capitalized, indexed by time.Month-1.
var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Partition returns the (year, month bucket) pair a record with the given
// entry date belongs to, e.g. 2026-02-10 -> ("2026", "02_Febrero").
func Partition(entryAt time.Time) (year string, monthBucket string) {
	year = fmt.Sprintf("%04d", entryAt.Year())
	monthBucket = fmt.Sprintf("%02d_%s", int(entryAt.Month()), monthNames[entryAt.Month()-1])
	return year, monthBucket
}

// SessionHours computes the worked hours between entry and exit as a full
// timestamp delta (correct across midnight), rounded to two decimal places
// with ties going away from zero.
func SessionHours(entry, exit time.Time) float64 {
	return math.Round(exit.Sub(entry).Hours()*100) / 100
}
