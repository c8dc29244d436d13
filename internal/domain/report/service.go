package report

import "context"

// Service defines business logic for incident reports
type Service interface {
	// AddIncident files a conduct report authored by a service head
	AddIncident(ctx context.Context, req AddIncidentRequest) (ReportResponse, error)

	ListByIntern(ctx context.Context, internID string) (ListReportsResponse, error)
	ListRecent(ctx context.Context, limit int) (ListReportsResponse, error)
}
