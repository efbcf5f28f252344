package response

import (
	"errors"
	"net/http"

	"github.com/hazari-app/hazari-backend-go/internal/domain/attendance"
	"github.com/hazari-app/hazari-backend-go/internal/domain/auth"
	"github.com/hazari-app/hazari-backend-go/internal/domain/contractor"
	"github.com/hazari-app/hazari-backend-go/internal/domain/labour"
	"github.com/hazari-app/hazari-backend-go/internal/domain/leave"
	"github.com/hazari-app/hazari-backend-go/internal/domain/user"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUsernameTaken):
		Conflict(w, "Username already taken")
	case errors.Is(err, auth.ErrPhoneTaken):
		Conflict(w, "Phone number already registered")
	case errors.Is(err, auth.ErrPhoneMismatch):
		BadRequest(w, "Phone number does not match our records", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrContractorAccessRequired):
		Forbidden(w, "Contractor access required")
	case errors.Is(err, user.ErrLabourAccessRequired):
		Forbidden(w, "Labour access required")

	// Directory errors
	case errors.Is(err, labour.ErrLabourNotFound):
		NotFound(w, "Labour not found")
	case errors.Is(err, labour.ErrPhoneAlreadyRegistered):
		Conflict(w, "Phone number already registered")
	case errors.Is(err, contractor.ErrContractorNotFound):
		NotFound(w, "Contractor not found")

	// Attendance errors
	case errors.Is(err, attendance.ErrNoCheckInToday):
		NotFound(w, "No check-in found for today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
