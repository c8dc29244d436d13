package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/attendance"
	"github.com/nexus-ceredi/nexus-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGuarded_BlocksSecondOpenSession(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)

	serviceID := createTestService(t, ctx, "Psicología")
	internID := createTestProfile(t, ctx, "intern", serviceID, nil)
	supervisorID := createTestProfile(t, ctx, "professional", serviceID, nil)

	entry := time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC)
	first := createTestRecord(t, ctx, internID, serviceID, supervisorID, attendance.StatusPendingEntry, entry)

	year, bucket := attendance.Partition(entry)
	_, err := repo.CreateGuarded(ctx, attendance.Record{
		ID:             "00000000-0000-0000-0000-000000000001",
		Year:           year,
		MonthBucket:    bucket,
		InternID:       internID,
		InternName:     "Test Intern",
		ServiceID:      serviceID,
		ServiceName:    "Test Service",
		SupervisorID:   supervisorID,
		SupervisorName: "Test Supervisor",
		EntryAt:        entry.Add(2 * time.Hour),
		Status:         attendance.StatusPendingEntry,
		Punctuality:    "on_time",
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateOpenSession)

	// Closing the first record reopens the day.
	now := time.Now().UTC()
	supervisor := supervisorID
	require.NoError(t, repo.UpdateStatusCAS(ctx, first.ID, year, bucket,
		attendance.StatusPendingEntry, attendance.StatusRejected, &supervisor, &now))

	created, err := repo.CreateGuarded(ctx, attendance.Record{
		ID:             "00000000-0000-0000-0000-000000000002",
		Year:           year,
		MonthBucket:    bucket,
		InternID:       internID,
		InternName:     "Test Intern",
		ServiceID:      serviceID,
		ServiceName:    "Test Service",
		SupervisorID:   supervisorID,
		SupervisorName: "Test Supervisor",
		EntryAt:        entry.Add(3 * time.Hour),
		Status:         attendance.StatusPendingEntry,
		Punctuality:    "on_time",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPendingEntry, created.Status)
}

func TestUpdateStatusCAS_WrongStateFails(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)

	serviceID := createTestService(t, ctx, "Nutrición")
	internID := createTestProfile(t, ctx, "intern", serviceID, nil)
	supervisorID := createTestProfile(t, ctx, "service_head", serviceID, nil)

	entry := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	rec := createTestRecord(t, ctx, internID, serviceID, supervisorID, attendance.StatusRejected, entry)

	now := time.Now().UTC()
	err := repo.UpdateStatusCAS(ctx, rec.ID, rec.Year, rec.MonthBucket,
		attendance.StatusPendingEntry, attendance.StatusApproved, &supervisorID, &now)
	assert.ErrorIs(t, err, attendance.ErrInvalidStateTransition)

	// A rejected record stays rejected.
	got, err := repo.GetByID(ctx, rec.ID, rec.Year, rec.MonthBucket)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusRejected, got.Status)
}

func TestListMonth_PartitionScopedAndOrdered(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)

	serviceID := createTestService(t, ctx, "Rehabilitación")
	internID := createTestProfile(t, ctx, "intern", serviceID, nil)
	supervisorID := createTestProfile(t, ctx, "professional", serviceID, nil)

	feb1 := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)
	feb2 := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	createTestRecord(t, ctx, internID, serviceID, supervisorID, attendance.StatusFinalized, feb1)
	createTestRecord(t, ctx, internID, serviceID, supervisorID, attendance.StatusFinalized, feb2)
	createTestRecord(t, ctx, internID, serviceID, supervisorID, attendance.StatusPendingEntry, mar)

	records, err := repo.ListMonth(ctx, attendance.MonthFilter{Year: "2026", Month: time.February})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest entry first, March stays out of the February partition.
	assert.Equal(t, feb2, records[0].EntryAt.UTC())
	assert.Equal(t, feb1, records[1].EntryAt.UTC())
	for _, r := range records {
		assert.Equal(t, "02_Febrero", r.MonthBucket)
	}
}

func TestGetByID_WrongPartitionNotFound(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)

	serviceID := createTestService(t, ctx, "Odontología")
	internID := createTestProfile(t, ctx, "intern", serviceID, nil)
	supervisorID := createTestProfile(t, ctx, "professional", serviceID, nil)

	entry := time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC)
	rec := createTestRecord(t, ctx, internID, serviceID, supervisorID, attendance.StatusPendingEntry, entry)

	_, err := repo.GetByID(ctx, rec.ID, "2026", "03_Marzo")
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}
