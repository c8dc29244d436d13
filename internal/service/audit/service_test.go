package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/attendance"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/report"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/schedule"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
	"github.com/nexus-ceredi/nexus-backend-go/internal/service/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The audit only reads interns, presence and filed absences, so small fakes
// over the repository interfaces keep these tests off the database.

type fakeUserRepo struct {
	user.Repository
	interns []user.Profile
}

func (f *fakeUserRepo) ListActiveInterns(ctx context.Context) ([]user.Profile, error) {
	return f.interns, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.Profile, error) {
	for _, p := range f.interns {
		if p.ID == id {
			return p, nil
		}
	}
	return user.Profile{}, user.ErrProfileNotFound
}

type fakeAttendanceRepo struct {
	attendance.Repository
	present []string
}

func (f *fakeAttendanceRepo) InternsPresentOn(ctx context.Context, date time.Time) ([]string, error) {
	return f.present, nil
}

type fakeReportRepo struct {
	report.Repository
	filed []report.IncidentReport
}

func (f *fakeReportRepo) CreateAbsenceOnce(ctx context.Context, r report.IncidentReport) (report.IncidentReport, error) {
	for _, existing := range f.filed {
		if existing.InternID == r.InternID && existing.AbsenceDate.Equal(*r.AbsenceDate) {
			return report.IncidentReport{}, report.ErrAbsenceAlreadyReported
		}
	}
	f.filed = append(f.filed, r)
	return r, nil
}

func weekdaySchedule() schedule.WeeklySchedule {
	ws := schedule.WeeklySchedule{}
	for _, day := range []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"} {
		ws[day] = schedule.DayConfig{Active: true, Entry: "08:00", Exit: "14:00"}
	}
	return ws
}

func intern(id string, ws schedule.WeeklySchedule) user.Profile {
	return user.Profile{
		ID:             id,
		Name:           "Intern " + id,
		Role:           user.RoleIntern,
		AccountStatus:  user.StatusActive,
		WeeklySchedule: ws,
	}
}

func TestRun_SplitsExpectedIntoPresentAndAbsent(t *testing.T) {
	// 2026-02-09 is a Monday.
	date := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)

	users := &fakeUserRepo{interns: []user.Profile{
		intern("a", weekdaySchedule()),
		intern("b", weekdaySchedule()),
		intern("c", schedule.WeeklySchedule{}),
	}}
	records := &fakeAttendanceRepo{present: []string{"a"}}
	reports := &fakeReportRepo{}

	svc := audit.NewAuditService(records, users, reports)

	result, err := svc.Run(context.Background(), date)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, result.Expected)
	assert.Equal(t, []string{"a"}, result.Present)
	assert.Equal(t, []string{"b"}, result.Absent)
	assert.Empty(t, reports.filed, "a dry run must not file reports")
}

func TestRun_UnscheduledDayHasNoExpectations(t *testing.T) {
	// 2026-02-08 is a Sunday, outside every weekday schedule.
	date := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

	users := &fakeUserRepo{interns: []user.Profile{intern("a", weekdaySchedule())}}
	svc := audit.NewAuditService(&fakeAttendanceRepo{}, users, &fakeReportRepo{})

	result, err := svc.Run(context.Background(), date)
	require.NoError(t, err)
	assert.Empty(t, result.Expected)
	assert.Empty(t, result.Absent)
}

func TestRunAndReport_FilesOneReportPerAbsentIntern(t *testing.T) {
	date := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)

	users := &fakeUserRepo{interns: []user.Profile{
		intern("a", weekdaySchedule()),
		intern("b", weekdaySchedule()),
	}}
	reports := &fakeReportRepo{}
	svc := audit.NewAuditService(&fakeAttendanceRepo{}, users, reports)

	result, err := svc.RunAndReport(context.Background(), date)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, result.Absent)
	require.Len(t, reports.filed, 2)

	filed := reports.filed[0]
	assert.Equal(t, report.KindAutomaticAbsence, filed.Kind)
	assert.Equal(t, report.GravityModerada, filed.Gravity)
	assert.Equal(t, report.SystemAuthorID, filed.AuthorID)
	assert.Equal(t, report.SystemAuthorName, filed.AuthorName)
	assert.Equal(t, "Inasistencia detectada el 2026-02-09", filed.Description)
	require.NotNil(t, filed.AbsenceDate)
	assert.True(t, filed.AbsenceDate.Equal(date))

	// A rerun skips the absences already on file.
	_, err = svc.RunAndReport(context.Background(), date)
	require.NoError(t, err)
	assert.Len(t, reports.filed, 2)
}
