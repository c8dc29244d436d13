package accrual

import (
	"context"
	"time"
)

// Repository defines data access for hour accruals
type Repository interface {
	// Init seeds the zero row for a newly assigned intern; a second call
	// is a no-op
	Init(ctx context.Context, internID, serviceID string) error

	// Increment adds delta hours to the (intern, service) total, creating
	// the row if missing. Callers run it inside the finalizing attendance
	// transaction, which guarantees at-most-once per record.
	Increment(ctx context.Context, internID, serviceID string, delta float64, at time.Time) error

	// Get returns the current accrual for one intern in one service
	Get(ctx context.Context, internID, serviceID string) (HourAccrual, error)

	// ListByService returns accruals for all interns of a service
	ListByService(ctx context.Context, serviceID string) ([]HourAccrual, error)
}
