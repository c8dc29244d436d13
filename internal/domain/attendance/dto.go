package attendance

import (
	"time"

	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	InternID     string `json:"-"`
	SupervisorID string `json:"supervisor_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SupervisorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_id",
			Message: "supervisor_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

type ValidateEntryRequest struct {
	RecordID     string `json:"-"`
	Year         string `json:"-"`
	MonthBucket  string `json:"-"`
	SupervisorID string `json:"-"`
	Decision     string `json:"decision"`
}

func (r *ValidateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}

	if r.Decision != DecisionApprove && r.Decision != DecisionReject {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be approve or reject",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestExitRequest struct {
	RecordID    string `json:"-"`
	Year        string `json:"-"`
	MonthBucket string `json:"-"`
	InternID    string `json:"-"`
}

type ApproveExitRequest struct {
	RecordID     string `json:"-"`
	Year         string `json:"-"`
	MonthBucket  string `json:"-"`
	SupervisorID string `json:"-"`
}

type ForceCloseRequest struct {
	RecordID    string `json:"-"`
	Year        string `json:"-"`
	MonthBucket string `json:"-"`
	AdminID     string `json:"-"`
}

// MonthFilter scopes reads to one partition, with optional narrowing.
type MonthFilter struct {
	Year         string
	Month        time.Month
	ServiceID    string
	InternID     string
	SupervisorID string
	Status       string
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsNumeric(f.Year) || len(f.Year) != 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a 4-digit value",
		})
	}

	if f.Month < time.January || f.Month > time.December {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{
		StatusPendingEntry, StatusApproved, StatusRejected, StatusPendingExit, StatusFinalized,
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown status filter",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthBucket renders the filter's partition name, e.g. "02_Febrero".
func (f MonthFilter) Bucket() string {
	_, bucket := Partition(time.Date(2000, f.Month, 1, 0, 0, 0, 0, time.UTC))
	return bucket
}

type RecordResponse struct {
	ID             string     `json:"id"`
	Year           string     `json:"year"`
	MonthBucket    string     `json:"month_bucket"`
	InternID       string     `json:"intern_id"`
	InternName     string     `json:"intern_name"`
	InternPhotoURL *string    `json:"intern_photo_url,omitempty"`
	ServiceID      string     `json:"service_id"`
	ServiceName    string     `json:"service_name"`
	SupervisorID   string     `json:"supervisor_id"`
	SupervisorName string     `json:"supervisor_name"`
	EntryAt        time.Time  `json:"entry_at"`
	ExitAt         *time.Time `json:"exit_at,omitempty"`
	Status         string     `json:"status"`
	SessionHours   *float64   `json:"session_hours,omitempty"`
	Punctuality    string     `json:"punctuality"`
	ScheduleWindow *string    `json:"schedule_window,omitempty"`
	ValidatedAt    *time.Time `json:"validated_at,omitempty"`
	ValidatedBy    *string    `json:"validated_by,omitempty"`
	AdminForced    bool       `json:"admin_forced"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:             r.ID,
		Year:           r.Year,
		MonthBucket:    r.MonthBucket,
		InternID:       r.InternID,
		InternName:     r.InternName,
		InternPhotoURL: r.InternPhotoURL,
		ServiceID:      r.ServiceID,
		ServiceName:    r.ServiceName,
		SupervisorID:   r.SupervisorID,
		SupervisorName: r.SupervisorName,
		EntryAt:        r.EntryAt,
		ExitAt:         r.ExitAt,
		Status:         r.Status,
		SessionHours:   r.SessionHours,
		Punctuality:    string(r.Punctuality),
		ScheduleWindow: r.ScheduleWindow,
		ValidatedAt:    r.ValidatedAt,
		ValidatedBy:    r.ValidatedBy,
		AdminForced:    r.AdminForced,
		CreatedAt:      r.CreatedAt,
	}
}

type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

func ToListRecordsResponse(records []Record) ListRecordsResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToRecordResponse(r))
	}
	return ListRecordsResponse{Records: out, Total: len(out)}
}
