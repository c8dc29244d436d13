package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/report"
	"github.com/nexus-ceredi/nexus-backend-go/internal/handler/http/response"
	"github.com/nexus-ceredi/nexus-backend-go/internal/service/audit"
)

type ReportHandler interface {
	AddIncident(w http.ResponseWriter, r *http.Request)
	ListByIntern(w http.ResponseWriter, r *http.Request)
	ListRecent(w http.ResponseWriter, r *http.Request)
	RunAudit(w http.ResponseWriter, r *http.Request)
	ReportAbsence(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
	auditService  audit.Service
}

func NewReportHandler(reportService report.Service, auditService audit.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		auditService:  auditService,
	}
}

// AddIncident implements ReportHandler.
func (h *reportHandlerImpl) AddIncident(w http.ResponseWriter, r *http.Request) {
	var req report.AddIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AuthorID = getUserIDFromContext(r)

	result, err := h.reportService.AddIncident(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Incident report filed", result)
}

// ListByIntern implements ReportHandler.
func (h *reportHandlerImpl) ListByIntern(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.ListByIntern(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRecent implements ReportHandler.
func (h *reportHandlerImpl) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.reportService.ListRecent(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func auditDate(r *http.Request) (time.Time, bool) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		// Default to yesterday: today's audit would flag everyone who
		// simply has not arrived yet.
		return time.Now().UTC().AddDate(0, 0, -1), true
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// RunAudit implements ReportHandler.
func (h *reportHandlerImpl) RunAudit(w http.ResponseWriter, r *http.Request) {
	date, ok := auditDate(r)
	if !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	result, err := h.auditService.RunAndReport(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence audit completed", result)
}

// ReportAbsence implements ReportHandler.
func (h *reportHandlerImpl) ReportAbsence(w http.ResponseWriter, r *http.Request) {
	date, ok := auditDate(r)
	if !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	result, err := h.auditService.ReportAbsence(r.Context(), chi.URLParam(r, "id"), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence reported", result)
}
