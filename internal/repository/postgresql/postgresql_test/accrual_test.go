package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/accrual"
	"github.com/nexus-ceredi/nexus-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrement_AccumulatesAcrossSessions(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewAccrualRepository(testDB)

	internID := uuid.NewString()
	serviceID := uuid.NewString()
	first := time.Date(2026, 2, 9, 14, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	require.NoError(t, repo.Increment(ctx, internID, serviceID, 6.5, first))
	require.NoError(t, repo.Increment(ctx, internID, serviceID, 3.25, second))

	got, err := repo.Get(ctx, internID, serviceID)
	require.NoError(t, err)
	assert.InDelta(t, 9.75, got.TotalHours, 0.001)
	require.NotNil(t, got.LastAttendanceAt)
	assert.True(t, got.LastAttendanceAt.Equal(second))
}

func TestGet_MissingAccrual(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewAccrualRepository(testDB)

	_, err := repo.Get(ctx, uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, accrual.ErrAccrualNotFound)
}

func TestInit_KeepsExistingTotal(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewAccrualRepository(testDB)

	internID := uuid.NewString()
	serviceID := uuid.NewString()

	require.NoError(t, repo.Increment(ctx, internID, serviceID, 4.0, time.Now().UTC()))
	require.NoError(t, repo.Init(ctx, internID, serviceID))

	got, err := repo.Get(ctx, internID, serviceID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got.TotalHours, 0.001)
}

func TestListByService_OrdersByTotalDesc(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewAccrualRepository(testDB)

	serviceID := uuid.NewString()
	otherService := uuid.NewString()
	low := uuid.NewString()
	high := uuid.NewString()
	at := time.Now().UTC()

	require.NoError(t, repo.Increment(ctx, low, serviceID, 2.0, at))
	require.NoError(t, repo.Increment(ctx, high, serviceID, 8.0, at))
	require.NoError(t, repo.Increment(ctx, uuid.NewString(), otherService, 99.0, at))

	got, err := repo.ListByService(ctx, serviceID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, high, got[0].InternID)
	assert.Equal(t, low, got[1].InternID)
}
