package report

import (
	"time"

	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/validator"
)

type AddIncidentRequest struct {
	AuthorID    string `json:"-"`
	InternID    string `json:"intern_id"`
	Gravity     string `json:"gravity"`
	Description string `json:"description"`
}

func (r *AddIncidentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InternID) {
		errs = append(errs, validator.ValidationError{
			Field:   "intern_id",
			Message: "intern_id is required",
		})
	}

	if !validator.IsInSlice(r.Gravity, []string{GravityLeve, GravityModerada, GravityGrave}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gravity",
			Message: "gravity must be leve, moderada or grave",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportResponse struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	Gravity     string     `json:"gravity"`
	InternID    string     `json:"intern_id"`
	InternName  string     `json:"intern_name"`
	ServiceID   *string    `json:"service_id,omitempty"`
	ServiceName *string    `json:"service_name,omitempty"`
	AuthorID    string     `json:"author_id"`
	AuthorName  string     `json:"author_name"`
	Description string     `json:"description"`
	AbsenceDate *time.Time `json:"absence_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToReportResponse(r IncidentReport) ReportResponse {
	return ReportResponse{
		ID:          r.ID,
		Kind:        r.Kind,
		Gravity:     r.Gravity,
		InternID:    r.InternID,
		InternName:  r.InternName,
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		AuthorID:    r.AuthorID,
		AuthorName:  r.AuthorName,
		Description: r.Description,
		AbsenceDate: r.AbsenceDate,
		CreatedAt:   r.CreatedAt,
	}
}

type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}

func ToListReportsResponse(reports []IncidentReport) ListReportsResponse {
	out := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, ToReportResponse(r))
	}
	return ListReportsResponse{Reports: out, Total: len(out)}
}
