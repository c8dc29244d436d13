package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondaySchedule(entry, exit string) WeeklySchedule {
	return WeeklySchedule{
		"Lunes": {Active: true, Entry: entry, Exit: exit},
	}
}

// 2026-02-09 is a Monday.
var monday = time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)

func TestDayName(t *testing.T) {
	assert.Equal(t, "Lunes", DayName(monday))
	assert.Equal(t, "Domingo", DayName(monday.AddDate(0, 0, 6)))
	assert.Equal(t, "Miércoles", DayName(monday.AddDate(0, 0, 2)))
}

func TestResolve_ActiveDay(t *testing.T) {
	plan := Resolve(mondaySchedule("08:00", "14:00"), monday)
	require.NotNil(t, plan)

	assert.Equal(t, time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC), plan.Entry)
	assert.Equal(t, time.Date(2026, 2, 9, 14, 0, 0, 0, time.UTC), plan.Exit)
	assert.Equal(t, "08:00-14:00", plan.Window())
}

func TestResolve_InactiveDay(t *testing.T) {
	ws := WeeklySchedule{
		"Lunes": {Active: false, Entry: "08:00", Exit: "14:00"},
	}
	assert.Nil(t, Resolve(ws, monday))
}

func TestResolve_AbsentDay(t *testing.T) {
	ws := mondaySchedule("08:00", "14:00")
	tuesday := monday.AddDate(0, 0, 1)
	assert.Nil(t, Resolve(ws, tuesday))
}

func TestResolve_OvernightShift(t *testing.T) {
	plan := Resolve(mondaySchedule("22:00", "06:00"), monday)
	require.NotNil(t, plan)

	assert.Equal(t, time.Date(2026, 2, 9, 22, 0, 0, 0, time.UTC), plan.Entry)
	assert.Equal(t, time.Date(2026, 2, 10, 6, 0, 0, 0, time.UTC), plan.Exit)
}

func TestPunctuality_Boundaries(t *testing.T) {
	plan := Resolve(mondaySchedule("08:00", "14:00"), monday)
	require.NotNil(t, plan)
	grace := 20 * time.Minute

	tests := []struct {
		name    string
		checkIn time.Time
		want    PunctualityFlag
	}{
		{"well before entry", monday.Add(7*time.Hour + 30*time.Minute), OnTime},
		{"just inside grace", time.Date(2026, 2, 9, 8, 19, 59, 0, time.UTC), OnTime},
		{"exactly at boundary", time.Date(2026, 2, 9, 8, 20, 0, 0, time.UTC), OnTime},
		{"just past boundary", time.Date(2026, 2, 9, 8, 20, 1, 0, time.UTC), Late},
		{"an hour late", time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC), Late},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Punctuality(*plan, tt.checkIn, grace))
		})
	}
}

func TestIsValidDayName(t *testing.T) {
	assert.True(t, IsValidDayName("Sábado"))
	assert.True(t, IsValidDayName("Lunes"))
	assert.False(t, IsValidDayName("Monday"))
	assert.False(t, IsValidDayName("lunes"))
}
