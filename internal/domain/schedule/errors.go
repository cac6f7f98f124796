package schedule

import "errors"

var (
	ErrWorkScheduleNotFound = errors.New("work schedule not found")
	ErrUserIDRequired       = errors.New("user ID is required")
)
