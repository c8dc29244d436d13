package attendance

import (
	"context"
	"io"
	"time"
)

// Service defines business logic for the attendance state machine
type Service interface {
	// CheckIn opens the intern's session for the day in pending_entry
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// ValidateEntry applies the supervisor's approve/reject decision on a
	// pending_entry record
	ValidateEntry(ctx context.Context, req ValidateEntryRequest) (RecordResponse, error)

	// RequestExit stamps the exit time on an approved record and moves it
	// to pending_exit
	RequestExit(ctx context.Context, req RequestExitRequest) (RecordResponse, error)

	// ApproveExit finalizes a pending_exit record, computing session hours
	// and crediting the intern's accrual exactly once
	ApproveExit(ctx context.Context, req ApproveExitRequest) (RecordResponse, error)

	// ForceClose lets an admin finalize any open record, accruing once
	ForceClose(ctx context.Context, req ForceCloseRequest) (RecordResponse, error)

	// Delete removes a record without touching accrued hours
	Delete(ctx context.Context, id, year, monthBucket string) error

	// GetRecord retrieves a single record within its partition
	GetRecord(ctx context.Context, id, year, monthBucket string) (RecordResponse, error)

	// ListMonth reads a month partition with optional filters
	ListMonth(ctx context.Context, filter MonthFilter) (ListRecordsResponse, error)

	// MyRecords lists the authenticated intern's records for a month
	MyRecords(ctx context.Context, internID string, year string, month time.Month) (ListRecordsResponse, error)

	// PendingForSupervisor lists the supervisor's actionable queue
	PendingForSupervisor(ctx context.Context, supervisorID string) (ListRecordsResponse, error)

	// ExportMonthCSV streams a month partition as CSV
	ExportMonthCSV(ctx context.Context, w io.Writer, filter MonthFilter) error
}
