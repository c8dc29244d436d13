package accrual

import "time"

// HourAccrual is the running total of validated hours for one intern in one
// service. It only ever grows, and only by the session hours of a finalized
// attendance record.
type HourAccrual struct {
	InternID         string     `json:"intern_id"`
	ServiceID        string     `json:"service_id"`
	TotalHours       float64    `json:"total_hours"`
	LastAttendanceAt *time.Time `json:"last_attendance_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
