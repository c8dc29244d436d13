package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/attendance"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/report"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/schedule"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
)

// Result is the outcome of one absence audit run.
type Result struct {
	Date     time.Time `json:"date"`
	Expected []string  `json:"expected"`
	Present  []string  `json:"present"`
	Absent   []string  `json:"absent"`
}

// Service runs the absence audit: interns whose schedule resolved for a day
// but who never checked in get an automatic absence report.
type Service interface {
	// Run computes expected/present/absent for a date without writing
	Run(ctx context.Context, date time.Time) (Result, error)

	// RunAndReport runs the audit and files one absence report per absent
	// intern; already-filed absences are skipped
	RunAndReport(ctx context.Context, date time.Time) (Result, error)

	// ReportAbsence files a single absence report idempotently
	ReportAbsence(ctx context.Context, internID string, date time.Time) (report.ReportResponse, error)
}

type AuditServiceImpl struct {
	attendanceRepo attendance.Repository
	userRepo       user.Repository
	reportRepo     report.Repository
}

func NewAuditService(
	attendanceRepo attendance.Repository,
	userRepo user.Repository,
	reportRepo report.Repository,
) Service {
	return &AuditServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		reportRepo:     reportRepo,
	}
}

// Run implements Service.
func (a *AuditServiceImpl) Run(ctx context.Context, date time.Time) (Result, error) {
	interns, err := a.userRepo.ListActiveInterns(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list active interns: %w", err)
	}

	var expected []string
	for _, intern := range interns {
		if schedule.Resolve(intern.WeeklySchedule, date) != nil {
			expected = append(expected, intern.ID)
		}
	}

	presentIDs, err := a.attendanceRepo.InternsPresentOn(ctx, date)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list present interns: %w", err)
	}

	present := make(map[string]bool, len(presentIDs))
	for _, id := range presentIDs {
		present[id] = true
	}

	result := Result{Date: date, Expected: expected}
	for _, id := range expected {
		if present[id] {
			result.Present = append(result.Present, id)
		} else {
			result.Absent = append(result.Absent, id)
		}
	}

	return result, nil
}

// RunAndReport implements Service.
func (a *AuditServiceImpl) RunAndReport(ctx context.Context, date time.Time) (Result, error) {
	result, err := a.Run(ctx, date)
	if err != nil {
		return Result{}, err
	}

	for _, internID := range result.Absent {
		if _, err := a.ReportAbsence(ctx, internID, date); err != nil {
			if errors.Is(err, report.ErrAbsenceAlreadyReported) {
				continue
			}
			return Result{}, err
		}
	}

	return result, nil
}

// ReportAbsence implements Service.
func (a *AuditServiceImpl) ReportAbsence(ctx context.Context, internID string, date time.Time) (report.ReportResponse, error) {
	intern, err := a.userRepo.GetByID(ctx, internID)
	if err != nil {
		return report.ReportResponse{}, err
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	created, err := a.reportRepo.CreateAbsenceOnce(ctx, report.IncidentReport{
		ID:          uuid.NewString(),
		Kind:        report.KindAutomaticAbsence,
		Gravity:     report.GravityModerada,
		InternID:    intern.ID,
		InternName:  intern.Name,
		ServiceID:   intern.ServiceID,
		ServiceName: intern.ServiceName,
		AuthorID:    report.SystemAuthorID,
		AuthorName:  report.SystemAuthorName,
		Description: fmt.Sprintf("Inasistencia detectada el %s", day.Format("2006-01-02")),
		AbsenceDate: &day,
	})
	if err != nil {
		return report.ReportResponse{}, err
	}

	return report.ToReportResponse(created), nil
}
