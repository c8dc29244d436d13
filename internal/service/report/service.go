package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/report"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	reportRepo report.Repository
	userRepo   user.Repository
}

func NewReportService(reportRepo report.Repository, userRepo user.Repository) report.Service {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

// AddIncident implements report.Service.
func (r *ReportServiceImpl) AddIncident(ctx context.Context, req report.AddIncidentRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	intern, err := r.userRepo.GetByID(ctx, req.InternID)
	if err != nil {
		return report.ReportResponse{}, err
	}
	if intern.Role != user.RoleIntern {
		return report.ReportResponse{}, user.ErrNotAnIntern
	}

	author, err := r.userRepo.GetByID(ctx, req.AuthorID)
	if err != nil {
		return report.ReportResponse{}, err
	}

	created, err := r.reportRepo.Create(ctx, report.IncidentReport{
		ID:          uuid.NewString(),
		Kind:        report.KindConduct,
		Gravity:     req.Gravity,
		InternID:    intern.ID,
		InternName:  intern.Name,
		ServiceID:   intern.ServiceID,
		ServiceName: intern.ServiceName,
		AuthorID:    author.ID,
		AuthorName:  author.Name,
		Description: req.Description,
	})
	if err != nil {
		return report.ReportResponse{}, err
	}

	return report.ToReportResponse(created), nil
}

// ListByIntern implements report.Service.
func (r *ReportServiceImpl) ListByIntern(ctx context.Context, internID string) (report.ListReportsResponse, error) {
	reports, err := r.reportRepo.ListByIntern(ctx, internID)
	if err != nil {
		return report.ListReportsResponse{}, err
	}
	return report.ToListReportsResponse(reports), nil
}

// ListRecent implements report.Service.
func (r *ReportServiceImpl) ListRecent(ctx context.Context, limit int) (report.ListReportsResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	reports, err := r.reportRepo.ListRecent(ctx, limit)
	if err != nil {
		return report.ListReportsResponse{}, err
	}
	return report.ToListReportsResponse(reports), nil
}
