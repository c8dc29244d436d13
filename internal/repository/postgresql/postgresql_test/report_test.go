package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/report"
	"github.com/nexus-ceredi/nexus-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAbsenceOnce_DeduplicatesPerDay(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewReportRepository(testDB)

	serviceID := createTestService(t, ctx, "Psicología")
	internID := createTestProfile(t, ctx, "intern", serviceID, nil)
	day := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)

	absence := func() report.IncidentReport {
		return report.IncidentReport{
			ID:          uuid.NewString(),
			Kind:        report.KindAutomaticAbsence,
			Gravity:     report.GravityModerada,
			InternID:    internID,
			InternName:  "Test Intern",
			AuthorID:    report.SystemAuthorID,
			AuthorName:  report.SystemAuthorName,
			Description: "Inasistencia detectada el 2026-02-09",
			AbsenceDate: &day,
		}
	}

	_, err := repo.CreateAbsenceOnce(ctx, absence())
	require.NoError(t, err)

	_, err = repo.CreateAbsenceOnce(ctx, absence())
	assert.ErrorIs(t, err, report.ErrAbsenceAlreadyReported)

	reports, err := repo.ListByIntern(ctx, internID)
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	// A different day is a fresh absence.
	nextDay := day.AddDate(0, 0, 1)
	second := absence()
	second.AbsenceDate = &nextDay
	_, err = repo.CreateAbsenceOnce(ctx, second)
	require.NoError(t, err)

	has, err := repo.HasAbsenceFor(ctx, internID, nextDay)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasAbsenceFor(ctx, internID, nextDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestReportListRecent_NewestFirst(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewReportRepository(testDB)

	serviceID := createTestService(t, ctx, "Nutrición")
	internID := createTestProfile(t, ctx, "intern", serviceID, nil)
	authorID := createTestProfile(t, ctx, "service_head", serviceID, nil)

	for _, desc := range []string{"primero", "segundo", "tercero"} {
		_, err := repo.Create(ctx, report.IncidentReport{
			ID:          uuid.NewString(),
			Kind:        report.KindConduct,
			Gravity:     report.GravityLeve,
			InternID:    internID,
			InternName:  "Test Intern",
			AuthorID:    authorID,
			AuthorName:  "Test Author",
			Description: desc,
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	reports, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "tercero", reports[0].Description)
	assert.Equal(t, "segundo", reports[1].Description)
}
