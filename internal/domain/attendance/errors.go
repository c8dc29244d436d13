package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrDuplicateOpenSession = errors.New("you already have an open session today")
	ErrInvalidSupervisor    = errors.New("supervisor not found or outside the intern's service")

	// State machine errors
	ErrInvalidStateTransition = errors.New("record is not in the required state for this operation")
	ErrNotRecordSupervisor    = errors.New("only the record's supervisor can validate it")
	ErrNotRecordIntern        = errors.New("only the record's intern can request an exit")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
