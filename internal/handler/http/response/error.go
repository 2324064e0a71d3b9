package response

import (
	"errors"
	"net/http"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/auth"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/checkin"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/employee"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/joboffer"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/leave"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/report"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrOTPExpired):
		BadRequest(w, "OTP expired or not generated", nil)
	case errors.Is(err, auth.ErrInvalidOTP):
		BadRequest(w, "Invalid OTP", nil)
	case errors.Is(err, auth.ErrInvalidResetKey):
		BadRequest(w, "Invalid or expired password reset key", nil)
	case errors.Is(err, auth.ErrGoogleNotEnabled):
		Forbidden(w, "Google sign-in is not configured")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveApplicationNotFound):
		NotFound(w, "Leave application not found")

	// Checkin domain errors
	case errors.Is(err, checkin.ErrCheckinNotFound):
		NotFound(w, "Checkin not found")
	case errors.Is(err, checkin.ErrNoRegulariseTime):
		BadRequest(w, "Regularise time is empty", nil)

	// Job offer domain errors
	case errors.Is(err, joboffer.ErrSalaryStructureNotFound):
		NotFound(w, "Salary structure not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonthFormat):
		BadRequest(w, "Invalid month format", nil)
	case errors.Is(err, report.ErrDataSourceUnavailable):
		ServiceUnavailable(w, "Attendance data source is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
