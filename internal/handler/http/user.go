package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/accrual"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
	"github.com/nexus-ceredi/nexus-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	CompleteRegistration(w http.ResponseWriter, r *http.Request)
	AssignRole(w http.ResponseWriter, r *http.Request)
	SetWeeklySchedule(w http.ResponseWriter, r *http.Request)
	ListStaff(w http.ResponseWriter, r *http.Request)
	ListInterns(w http.ResponseWriter, r *http.Request)
	ListPendingAssignment(w http.ResponseWriter, r *http.Request)
	GetAccrual(w http.ResponseWriter, r *http.Request)
	ListAccruals(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.Service
	accrualRepo accrual.Repository
}

func NewUserHandler(userService user.Service, accrualRepo accrual.Repository) UserHandler {
	return &userHandlerImpl{
		userService: userService,
		accrualRepo: accrualRepo,
	}
}

// Me implements UserHandler.
func (h *userHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.GetProfile(r.Context(), getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CompleteRegistration implements UserHandler.
func (h *userHandlerImpl) CompleteRegistration(w http.ResponseWriter, r *http.Request) {
	var req user.CompleteRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = getUserIDFromContext(r)

	result, err := h.userService.CompleteRegistration(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Registration completed", result)
}

// AssignRole implements UserHandler.
func (h *userHandlerImpl) AssignRole(w http.ResponseWriter, r *http.Request) {
	var req user.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")

	result, err := h.userService.AssignRole(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role assigned", result)
}

// SetWeeklySchedule implements UserHandler.
func (h *userHandlerImpl) SetWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	var req user.SetWeeklyScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")

	result, err := h.userService.SetWeeklySchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule updated", result)
}

func serviceIDFilter(r *http.Request) *string {
	if s := r.URL.Query().Get("service_id"); s != "" {
		return &s
	}
	return nil
}

// ListStaff implements UserHandler.
func (h *userHandlerImpl) ListStaff(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.ListStaff(r.Context(), serviceIDFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListInterns implements UserHandler.
func (h *userHandlerImpl) ListInterns(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.ListInterns(r.Context(), serviceIDFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPendingAssignment implements UserHandler.
func (h *userHandlerImpl) ListPendingAssignment(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.ListPendingAssignment(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAccrual implements UserHandler.
func (h *userHandlerImpl) GetAccrual(w http.ResponseWriter, r *http.Request) {
	internID := chi.URLParam(r, "id")
	serviceID := r.URL.Query().Get("service_id")
	if serviceID == "" {
		response.BadRequest(w, "service_id is required", nil)
		return
	}

	result, err := h.accrualRepo.Get(r.Context(), internID, serviceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAccruals implements UserHandler. Returns every intern's hour total for
// one service, highest first.
func (h *userHandlerImpl) ListAccruals(w http.ResponseWriter, r *http.Request) {
	serviceID := r.URL.Query().Get("service_id")
	if serviceID == "" {
		response.BadRequest(w, "service_id is required", nil)
		return
	}

	result, err := h.accrualRepo.ListByService(r.Context(), serviceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
