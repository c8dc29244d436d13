package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/attendance"
	"github.com/nexus-ceredi/nexus-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	ValidateEntry(w http.ResponseWriter, r *http.Request)
	RequestExit(w http.ResponseWriter, r *http.Request)
	ApproveExit(w http.ResponseWriter, r *http.Request)
	ForceClose(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	MyRecords(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.InternID = getUserIDFromContext(r)

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in registered", result)
}

// ValidateEntry implements AttendanceHandler.
func (h *attendanceHandlerImpl) ValidateEntry(w http.ResponseWriter, r *http.Request) {
	var req attendance.ValidateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	year, bucket, _, ok := partitionFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}
	req.RecordID = chi.URLParam(r, "id")
	req.Year = year
	req.MonthBucket = bucket
	req.SupervisorID = getUserIDFromContext(r)

	result, err := h.attendanceService.ValidateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entry validated", result)
}

// RequestExit implements AttendanceHandler.
func (h *attendanceHandlerImpl) RequestExit(w http.ResponseWriter, r *http.Request) {
	year, bucket, _, ok := partitionFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	req := attendance.RequestExitRequest{
		RecordID:    chi.URLParam(r, "id"),
		Year:        year,
		MonthBucket: bucket,
		InternID:    getUserIDFromContext(r),
	}

	result, err := h.attendanceService.RequestExit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exit requested", result)
}

// ApproveExit implements AttendanceHandler.
func (h *attendanceHandlerImpl) ApproveExit(w http.ResponseWriter, r *http.Request) {
	year, bucket, _, ok := partitionFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	req := attendance.ApproveExitRequest{
		RecordID:     chi.URLParam(r, "id"),
		Year:         year,
		MonthBucket:  bucket,
		SupervisorID: getUserIDFromContext(r),
	}

	result, err := h.attendanceService.ApproveExit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record finalized", result)
}

// ForceClose implements AttendanceHandler.
func (h *attendanceHandlerImpl) ForceClose(w http.ResponseWriter, r *http.Request) {
	year, bucket, _, ok := partitionFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	req := attendance.ForceCloseRequest{
		RecordID:    chi.URLParam(r, "id"),
		Year:        year,
		MonthBucket: bucket,
		AdminID:     getUserIDFromContext(r),
	}

	result, err := h.attendanceService.ForceClose(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record force-closed", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	year, bucket, _, ok := partitionFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), chi.URLParam(r, "id"), year, bucket); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record deleted", nil)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	year, bucket, _, ok := partitionFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	result, err := h.attendanceService.GetRecord(r.Context(), chi.URLParam(r, "id"), year, bucket)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	year, _, month, ok := partitionFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	filter := attendance.MonthFilter{
		Year:         year,
		Month:        month,
		ServiceID:    r.URL.Query().Get("service_id"),
		InternID:     r.URL.Query().Get("intern_id"),
		SupervisorID: r.URL.Query().Get("supervisor_id"),
		Status:       r.URL.Query().Get("status"),
	}

	result, err := h.attendanceService.ListMonth(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyRecords implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyRecords(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	year := r.URL.Query().Get("year")
	if year == "" {
		year = strconv.Itoa(now.Year())
	}
	month := now.Month()
	if m := r.URL.Query().Get("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
		month = time.Month(n)
	}

	result, err := h.attendanceService.MyRecords(r.Context(), getUserIDFromContext(r), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Pending implements AttendanceHandler.
func (h *attendanceHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.PendingForSupervisor(r.Context(), getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV implements AttendanceHandler.
func (h *attendanceHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	year, bucket, month, ok := partitionFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	filter := attendance.MonthFilter{
		Year:      year,
		Month:     month,
		ServiceID: r.URL.Query().Get("service_id"),
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="asistencias_%s_%s.csv"`, year, bucket))

	if err := h.attendanceService.ExportMonthCSV(r.Context(), w, filter); err != nil {
		// Headers are already written; the truncated body is the signal.
		return
	}
}
