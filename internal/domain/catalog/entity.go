package catalog

import "time"

// Service is a hospital service (department) interns are assigned to.
type Service struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
