package schedule

import (
	"fmt"
	"time"
)

// Spanish weekday names, as stored on user profiles. Index matches
// time.Weekday (Sunday = 0).
var weekdayNames = [7]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// WeekDays lists the configurable days in display order (Monday first).
var WeekDays = []string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

// DayName returns the Spanish weekday name for a date.
func DayName(date time.Time) string {
	return weekdayNames[int(date.Weekday())]
}

// IsValidDayName reports whether name is one of the seven stored day keys.
func IsValidDayName(name string) bool {
	for _, d := range weekdayNames {
		if d == name {
			return true
		}
	}
	return false
}

// DayConfig is the stored per-day configuration on a profile's weekly
// schedule. Entry and Exit are "HH:MM" wall-clock times.
type DayConfig struct {
	Active bool   `json:"active"`
	Entry  string `json:"entry"`
	Exit   string `json:"exit"`
}

// WeeklySchedule maps a Spanish weekday name to its configuration. Days
// absent from the map carry no obligation.
type WeeklySchedule map[string]DayConfig

// DayPlan is the resolved obligation for a concrete date.
type DayPlan struct {
	Entry time.Time
	Exit  time.Time
}

// Window renders the plan as the "HH:MM-HH:MM" string denormalized onto
// attendance records.
func (p DayPlan) Window() string {
	return fmt.Sprintf("%s-%s", p.Entry.Format("15:04"), p.Exit.Format("15:04"))
}

// PunctualityFlag is the advisory tardiness metadata stored on a record.
type PunctualityFlag string

const (
	OnTime PunctualityFlag = "on_time"
	Late   PunctualityFlag = "late"
)

// Resolve maps a date to the schedule's plan for that weekday. It returns
// nil when the day is absent or inactive: no obligation that day. Entry and
// Exit are anchored on the date itself in the date's location; an exit at or
// before the entry time is treated as next-day (overnight shift).
func Resolve(ws WeeklySchedule, date time.Time) *DayPlan {
	cfg, ok := ws[DayName(date)]
	if !ok || !cfg.Active {
		return nil
	}

	entry, err := atTimeOfDay(date, cfg.Entry)
	if err != nil {
		return nil
	}
	exit, err := atTimeOfDay(date, cfg.Exit)
	if err != nil {
		return nil
	}
	if !exit.After(entry) {
		exit = exit.Add(24 * time.Hour)
	}

	return &DayPlan{Entry: entry, Exit: exit}
}

// Punctuality flags a check-in against the plan's entry time plus a grace
// period. The boundary is inclusive: checking in exactly at entry+grace is
// still on time. The flag never blocks a check-in.
func Punctuality(plan DayPlan, checkInAt time.Time, grace time.Duration) PunctualityFlag {
	if checkInAt.After(plan.Entry.Add(grace)) {
		return Late
	}
	return OnTime
}

// ParseTimeOfDay validates an "HH:MM" wall-clock string.
func ParseTimeOfDay(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}

func atTimeOfDay(date time.Time, hhmm string) (time.Time, error) {
	t, err := ParseTimeOfDay(hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", hhmm, err)
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}
