package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name       string
		entry      time.Time
		wantYear   string
		wantBucket string
	}{
		{"march", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), "2026", "03_Marzo"},
		{"february", time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC), "2026", "02_Febrero"},
		{"december", time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC), "2025", "12_Diciembre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, bucket := Partition(tt.entry)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantBucket, bucket)
		})
	}
}

func TestSessionHours(t *testing.T) {
	entry := time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC)
	exit := time.Date(2026, 2, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, 6.5, SessionHours(entry, exit))
}

func TestSessionHours_AcrossMidnight(t *testing.T) {
	entry := time.Date(2026, 2, 9, 23, 0, 0, 0, time.UTC)
	exit := time.Date(2026, 2, 10, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 2.0, SessionHours(entry, exit))
}

func TestSessionHours_Rounding(t *testing.T) {
	entry := time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC)
	// 5 hours and 20 seconds rounds half away from zero on the second
	// decimal: 5.00555... -> 5.01.
	exit := entry.Add(5*time.Hour + 20*time.Second)
	assert.Equal(t, 5.01, SessionHours(entry, exit))
}

func TestIsOpen(t *testing.T) {
	for _, s := range OpenStatuses {
		assert.True(t, Record{Status: s}.IsOpen(), s)
	}
	assert.False(t, Record{Status: StatusRejected}.IsOpen())
	assert.False(t, Record{Status: StatusFinalized}.IsOpen())
}

func TestMonthFilterBucket(t *testing.T) {
	f := MonthFilter{Year: "2026", Month: time.September}
	assert.Equal(t, "09_Septiembre", f.Bucket())
}
