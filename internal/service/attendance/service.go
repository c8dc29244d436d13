package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/accrual"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/attendance"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/report"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/schedule"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/database"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/sse"
	"github.com/nexus-ceredi/nexus-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.Repository
	userRepo       user.Repository
	accrualRepo    accrual.Repository
	reportRepo     report.Repository
	hub            *sse.Hub
	gracePeriod    time.Duration
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	userRepo user.Repository,
	accrualRepo accrual.Repository,
	reportRepo report.Repository,
	hub *sse.Hub,
	gracePeriod time.Duration,
) attendance.Service {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		accrualRepo:    accrualRepo,
		reportRepo:     reportRepo,
		hub:            hub,
		gracePeriod:    gracePeriod,
	}
}

// CheckIn implements attendance.Service.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	now := time.Now().UTC()

	intern, err := a.userRepo.GetByID(ctx, req.InternID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get intern profile: %w", err)
	}
	if !intern.IsActive() {
		return attendance.RecordResponse{}, user.ErrProfileNotActive
	}
	if intern.Role != user.RoleIntern {
		return attendance.RecordResponse{}, user.ErrNotAnIntern
	}

	supervisor, err := a.userRepo.GetByID(ctx, req.SupervisorID)
	if err != nil || !supervisor.IsActive() || !supervisor.IsStaff() {
		return attendance.RecordResponse{}, attendance.ErrInvalidSupervisor
	}
	if intern.ServiceID == nil || supervisor.ServiceID == nil || *intern.ServiceID != *supervisor.ServiceID {
		return attendance.RecordResponse{}, attendance.ErrInvalidSupervisor
	}

	// Tardiness is advisory. Without a resolved plan for today the record
	// carries on_time and no window.
	punctuality := schedule.OnTime
	var window *string
	if plan := schedule.Resolve(intern.WeeklySchedule, now); plan != nil {
		punctuality = schedule.Punctuality(*plan, now, a.gracePeriod)
		w := plan.Window()
		window = &w
	}

	year, bucket := attendance.Partition(now)
	record := attendance.Record{
		ID:             uuid.NewString(),
		Year:           year,
		MonthBucket:    bucket,
		InternID:       intern.ID,
		InternName:     intern.Name,
		InternPhotoURL: intern.PhotoURL,
		ServiceID:      *intern.ServiceID,
		ServiceName:    derefOr(intern.ServiceName, ""),
		SupervisorID:   supervisor.ID,
		SupervisorName: supervisor.Name,
		EntryAt:        now,
		Status:         attendance.StatusPendingEntry,
		Punctuality:    punctuality,
		ScheduleWindow: window,
	}

	created, err := a.attendanceRepo.CreateGuarded(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	a.hub.Publish(supervisor.ID, sse.Event{
		UserID: supervisor.ID,
		Event:  sse.EventCheckIn,
		Data:   attendance.ToRecordResponse(created),
	})

	return attendance.ToRecordResponse(created), nil
}

// ValidateEntry implements attendance.Service.
func (a *AttendanceServiceImpl) ValidateEntry(ctx context.Context, req attendance.ValidateEntryRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	record, err := a.attendanceRepo.GetByID(ctx, req.RecordID, req.Year, req.MonthBucket)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if record.SupervisorID != req.SupervisorID {
		return attendance.RecordResponse{}, attendance.ErrNotRecordSupervisor
	}

	toStatus := attendance.StatusApproved
	if req.Decision == attendance.DecisionReject {
		toStatus = attendance.StatusRejected
	}

	now := time.Now().UTC()
	err = a.attendanceRepo.UpdateStatusCAS(ctx,
		req.RecordID, req.Year, req.MonthBucket,
		attendance.StatusPendingEntry, toStatus,
		&req.SupervisorID, &now,
	)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	updated, err := a.attendanceRepo.GetByID(ctx, req.RecordID, req.Year, req.MonthBucket)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	a.hub.Publish(updated.InternID, sse.Event{
		UserID: updated.InternID,
		Event:  sse.EventEntryValidated,
		Data:   attendance.ToRecordResponse(updated),
	})

	return attendance.ToRecordResponse(updated), nil
}

// RequestExit implements attendance.Service.
func (a *AttendanceServiceImpl) RequestExit(ctx context.Context, req attendance.RequestExitRequest) (attendance.RecordResponse, error) {
	record, err := a.attendanceRepo.GetByID(ctx, req.RecordID, req.Year, req.MonthBucket)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if record.InternID != req.InternID {
		return attendance.RecordResponse{}, attendance.ErrNotRecordIntern
	}

	now := time.Now().UTC()
	if err := a.attendanceRepo.MarkExitRequested(ctx, req.RecordID, req.Year, req.MonthBucket, now); err != nil {
		return attendance.RecordResponse{}, err
	}

	updated, err := a.attendanceRepo.GetByID(ctx, req.RecordID, req.Year, req.MonthBucket)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	a.hub.Publish(updated.SupervisorID, sse.Event{
		UserID: updated.SupervisorID,
		Event:  sse.EventExitRequested,
		Data:   attendance.ToRecordResponse(updated),
	})

	return attendance.ToRecordResponse(updated), nil
}

// ApproveExit implements attendance.Service. Status transition and accrual
// increment commit or roll back together; the row lock plus the status gate
// make the credit exactly-once under concurrent approvals.
func (a *AttendanceServiceImpl) ApproveExit(ctx context.Context, req attendance.ApproveExitRequest) (attendance.RecordResponse, error) {
	var finalized attendance.Record
	accrualFailed := false

	err := postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		record, err := a.attendanceRepo.GetByIDForUpdate(txCtx, req.RecordID, req.Year, req.MonthBucket)
		if err != nil {
			return err
		}
		if record.SupervisorID != req.SupervisorID {
			return attendance.ErrNotRecordSupervisor
		}
		if record.Status != attendance.StatusPendingExit || record.ExitAt == nil {
			return attendance.ErrInvalidStateTransition
		}

		now := time.Now().UTC()
		hours := attendance.SessionHours(record.EntryAt, *record.ExitAt)
		record.SessionHours = &hours
		record.ValidatedAt = &now
		record.ValidatedBy = &req.SupervisorID

		if err := a.attendanceRepo.Finalize(txCtx, record); err != nil {
			return err
		}

		if err := a.accrualRepo.Increment(txCtx, record.InternID, record.ServiceID, hours, *record.ExitAt); err != nil {
			accrualFailed = true
			return fmt.Errorf("failed to credit hours: %w", err)
		}

		record.Status = attendance.StatusFinalized
		finalized = record
		return nil
	})
	if err != nil {
		if accrualFailed {
			a.fileAccrualFailure(ctx, req.RecordID, req.Year, req.MonthBucket, err)
		}
		return attendance.RecordResponse{}, err
	}

	a.hub.PublishToMany([]string{finalized.InternID, finalized.SupervisorID}, sse.Event{
		Event: sse.EventFinalized,
		Data:  attendance.ToRecordResponse(finalized),
	})

	return attendance.ToRecordResponse(finalized), nil
}

// ForceClose implements attendance.Service.
func (a *AttendanceServiceImpl) ForceClose(ctx context.Context, req attendance.ForceCloseRequest) (attendance.RecordResponse, error) {
	var finalized attendance.Record
	accrualFailed := false

	err := postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		record, err := a.attendanceRepo.GetByIDForUpdate(txCtx, req.RecordID, req.Year, req.MonthBucket)
		if err != nil {
			return err
		}
		if !record.IsOpen() {
			return attendance.ErrInvalidStateTransition
		}

		now := time.Now().UTC()
		if record.ExitAt == nil {
			record.ExitAt = &now
		}
		hours := attendance.SessionHours(record.EntryAt, *record.ExitAt)
		record.SessionHours = &hours
		record.ValidatedAt = &now
		record.ValidatedBy = &req.AdminID
		record.AdminForced = true

		if err := a.attendanceRepo.Finalize(txCtx, record); err != nil {
			return err
		}

		if err := a.accrualRepo.Increment(txCtx, record.InternID, record.ServiceID, hours, *record.ExitAt); err != nil {
			accrualFailed = true
			return fmt.Errorf("failed to credit hours: %w", err)
		}

		record.Status = attendance.StatusFinalized
		finalized = record
		return nil
	})
	if err != nil {
		if accrualFailed {
			a.fileAccrualFailure(ctx, req.RecordID, req.Year, req.MonthBucket, err)
		}
		return attendance.RecordResponse{}, err
	}

	a.hub.PublishToMany([]string{finalized.InternID, finalized.SupervisorID}, sse.Event{
		Event: sse.EventFinalized,
		Data:  attendance.ToRecordResponse(finalized),
	})

	return attendance.ToRecordResponse(finalized), nil
}

// fileAccrualFailure records a reconciliation incident when a finalization
// rolled back on the accrual write. Hours are never dropped silently; the
// caller still sees the error, this leaves the audit trail.
func (a *AttendanceServiceImpl) fileAccrualFailure(ctx context.Context, recordID, year, monthBucket string, cause error) {
	record, err := a.attendanceRepo.GetByID(ctx, recordID, year, monthBucket)
	if err != nil {
		return
	}

	serviceID := record.ServiceID
	serviceName := record.ServiceName
	_, _ = a.reportRepo.Create(ctx, report.IncidentReport{
		ID:          uuid.NewString(),
		Kind:        report.KindAccrualFailure,
		Gravity:     report.GravityGrave,
		InternID:    record.InternID,
		InternName:  record.InternName,
		ServiceID:   &serviceID,
		ServiceName: &serviceName,
		AuthorID:    report.SystemAuthorID,
		AuthorName:  report.SystemAuthorName,
		Description: fmt.Sprintf("hour credit failed for record %s: %v", recordID, cause),
	})
}

// Delete implements attendance.Service. Accrued hours are left untouched;
// compensations go through incident reports, not silent rewrites.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id, year, monthBucket string) error {
	return a.attendanceRepo.Delete(ctx, id, year, monthBucket)
}

// GetRecord implements attendance.Service.
func (a *AttendanceServiceImpl) GetRecord(ctx context.Context, id, year, monthBucket string) (attendance.RecordResponse, error) {
	record, err := a.attendanceRepo.GetByID(ctx, id, year, monthBucket)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToRecordResponse(record), nil
}

// ListMonth implements attendance.Service.
func (a *AttendanceServiceImpl) ListMonth(ctx context.Context, filter attendance.MonthFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, err := a.attendanceRepo.ListMonth(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}
	return attendance.ToListRecordsResponse(records), nil
}

// MyRecords implements attendance.Service.
func (a *AttendanceServiceImpl) MyRecords(ctx context.Context, internID string, year string, month time.Month) (attendance.ListRecordsResponse, error) {
	filter := attendance.MonthFilter{Year: year, Month: month}
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, err := a.attendanceRepo.ListByIntern(ctx, internID, year, filter.Bucket())
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}
	return attendance.ToListRecordsResponse(records), nil
}

// PendingForSupervisor implements attendance.Service. The queue only spans
// the current partition; validation happens the same day in practice.
func (a *AttendanceServiceImpl) PendingForSupervisor(ctx context.Context, supervisorID string) (attendance.ListRecordsResponse, error) {
	year, bucket := attendance.Partition(time.Now().UTC())

	records, err := a.attendanceRepo.ListPendingForSupervisor(ctx, supervisorID, year, bucket)
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}
	return attendance.ToListRecordsResponse(records), nil
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
