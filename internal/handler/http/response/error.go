package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console/internal/domain/auth"
	"github.com/cmlabs-hris/hris-console/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/cmlabs-hris/hris-console/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-console/internal/domain/user"
	"github.com/cmlabs-hris/hris-console/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-console/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-console/internal/repository/rest"
)

// HandleError maps domain and backend errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Backend answers keep their message; 5xx become a gateway error
	var apiErr *rest.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 500 {
			BadGateway(w, apiErr.Message)
			return
		}
		Status(w, apiErr.StatusCode, apiErr.Message)
		return
	}

	switch {
	// Session errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrSessionRevoked):
		Unauthorized(w, "Session revoked")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, jwt.ErrNoSession),
		errors.Is(err, rest.ErrNoToken):
		Unauthorized(w, rest.MessageUnauthorized)
	case errors.Is(err, auth.ErrMissingAccessToken),
		errors.Is(err, auth.ErrMissingProfile):
		BadGateway(w, err.Error())
	case errors.Is(err, rest.ErrUnavailable):
		BadGateway(w, rest.MessageRequestError)

	// User domain errors
	case errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserIDRequired),
		errors.Is(err, user.ErrNothingToUpdate),
		errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidMonth),
		errors.Is(err, attendance.ErrUserIDRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEventAlreadyVoided),
		errors.Is(err, attendance.ErrActionNotAllowed):
		Conflict(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrUserIDRequired):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
