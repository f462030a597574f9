package response

import (
	"errors"
	"net/http"

	"github.com/RostrApp/rostr-backend-go/internal/domain/auth"
	"github.com/RostrApp/rostr-backend-go/internal/domain/report"
	"github.com/RostrApp/rostr-backend-go/internal/domain/schedule"
	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Role must be 'admin' or 'staff'", nil)
	case errors.Is(err, user.ErrAdminRoleRequired),
		errors.Is(err, user.ErrStaffRoleRequired):
		Forbidden(w, err.Error())

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, schedule.ErrInsufficientStaff):
		BadRequest(w, "Not enough staff to run this strategy", nil)
	case errors.Is(err, schedule.ErrUnknownStrategy):
		BadRequest(w, "Unknown scheduling strategy", nil)
	case errors.Is(err, schedule.ErrInvalidStaff):
		BadRequest(w, "Staff member not found or not a staff role", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrNotAssignedStaff):
		Forbidden(w, "Shift is assigned to another staff member")
	case errors.Is(err, shift.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for this shift")
	case errors.Is(err, shift.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out of this shift")
	case errors.Is(err, shift.ErrNotClockedIn):
		Conflict(w, "Clock-in is required before clock-out")
	case errors.Is(err, shift.ErrClockOutBeforeClockIn):
		BadRequest(w, "Clock-out cannot precede clock-in", nil)
	case errors.Is(err, shift.ErrInvalidWindow):
		BadRequest(w, "Shift end_time must be after start_time", nil)

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
