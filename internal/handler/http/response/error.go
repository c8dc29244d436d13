package response

import (
	"errors"
	"net/http"

	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/accrual"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/attendance"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/auth"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/catalog"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/report"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/user"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidState):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrEmailNotAllowed):
		Forbidden(w, "Google account email is not verified")
	case errors.Is(err, auth.ErrNotAdmin):
		Forbidden(w, "Only admins can impersonate a role")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateOpenSession):
		Conflict(w, "You already have an open session today")
	case errors.Is(err, attendance.ErrInvalidSupervisor):
		BadRequest(w, "Supervisor not found or outside your service", nil)
	case errors.Is(err, attendance.ErrInvalidStateTransition):
		Conflict(w, "Record is not in the required state for this operation")
	case errors.Is(err, attendance.ErrNotRecordSupervisor):
		Forbidden(w, "Only the record's supervisor can validate it")
	case errors.Is(err, attendance.ErrNotRecordIntern):
		Forbidden(w, "Only the record's intern can request an exit")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// User domain errors
	case errors.Is(err, user.ErrProfileNotFound):
		NotFound(w, "Profile not found")
	case errors.Is(err, user.ErrProfileNotActive):
		Forbidden(w, "Profile is not active yet")
	case errors.Is(err, user.ErrNotAnIntern):
		BadRequest(w, "Profile is not an intern", nil)
	case errors.Is(err, user.ErrServiceRequired):
		BadRequest(w, "A service must be assigned for this role", nil)
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Unknown role", nil)

	// Accrual domain errors
	case errors.Is(err, accrual.ErrAccrualNotFound):
		NotFound(w, "Hour accrual not found")

	// Report domain errors
	case errors.Is(err, report.ErrAbsenceAlreadyReported):
		Conflict(w, "Absence already reported for this intern and day")
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Incident report not found")

	// Catalog domain errors
	case errors.Is(err, catalog.ErrServiceNotFound):
		NotFound(w, "Service not found")
	case errors.Is(err, catalog.ErrServiceNameTaken):
		Conflict(w, "A service with that name already exists")
	case errors.Is(err, catalog.ErrServiceInUse):
		Conflict(w, "Service still has assigned profiles")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
