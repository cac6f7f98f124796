package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidMonth       = errors.New("month must have format YYYY-MM")
	ErrEventNotFound      = errors.New("attendance record not found")
	ErrEventAlreadyVoided = errors.New("attendance record is already voided")
	ErrActionNotAllowed   = errors.New("this attendance action is not allowed today")
	ErrUserIDRequired     = errors.New("user id is required")
)
