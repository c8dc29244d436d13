package attendance

import (
	"context"
	"time"
)

// Repository defines data access for partitioned attendance records. Every
// point read and update carries the (year, monthBucket) partition pair so
// lookups never scan outside one month.
type Repository interface {
	// CreateGuarded inserts the record only when the intern has no open
	// record for the same calendar day. The precondition is evaluated
	// inside the INSERT statement itself; a violated guard returns
	// ErrDuplicateOpenSession.
	CreateGuarded(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a record within its partition
	GetByID(ctx context.Context, id, year, monthBucket string) (Record, error)

	// GetByIDForUpdate re-reads a record with a row lock; must run inside
	// a transaction
	GetByIDForUpdate(ctx context.Context, id, year, monthBucket string) (Record, error)

	// UpdateStatusCAS moves the record from fromStatus to toStatus,
	// stamping validation metadata. Returns ErrInvalidStateTransition
	// when the record is not in fromStatus anymore.
	UpdateStatusCAS(ctx context.Context, id, year, monthBucket, fromStatus, toStatus string, validatedBy *string, validatedAt *time.Time) error

	// MarkExitRequested sets exit_at and flips approved to pending_exit
	// in one statement
	MarkExitRequested(ctx context.Context, id, year, monthBucket string, exitAt time.Time) error

	// Finalize closes the locked record: sets exit_at (when not already
	// set), session_hours, validated_at/by, admin_forced and the terminal
	// status. Must run inside the approving transaction.
	Finalize(ctx context.Context, record Record) error

	// Delete removes a record from its partition
	Delete(ctx context.Context, id, year, monthBucket string) error

	// ListMonth reads one partition ordered by entry_at DESC
	ListMonth(ctx context.Context, filter MonthFilter) ([]Record, error)

	// ListByIntern reads an intern's records in one partition, newest first
	ListByIntern(ctx context.Context, internID, year, monthBucket string) ([]Record, error)

	// ListPendingForSupervisor returns the supervisor's actionable queue
	// (pending_entry and pending_exit) across the current partition
	ListPendingForSupervisor(ctx context.Context, supervisorID, year, monthBucket string) ([]Record, error)

	// InternsPresentOn returns the distinct intern IDs with an entry on
	// the given calendar day, for the absence audit
	InternsPresentOn(ctx context.Context, date time.Time) ([]string, error)
}
