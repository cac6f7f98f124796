package attendance

import (
	"context"
)

// AttendanceService defines the attendance use cases of the console.
type AttendanceService interface {
	// MyMonth reconciles the caller's month.
	MyMonth(ctx context.Context, month *Month) (MonthView, error)

	// CheckIn and CheckOut clock the caller, honouring today's quick action.
	CheckIn(ctx context.Context, ip string) (Event, error)
	CheckOut(ctx context.Context, ip string) (Event, error)

	// MyEvents lists the caller's clock events, voided ones included, newest first.
	MyEvents(ctx context.Context) ([]Event, error)

	// UserMonth reconciles another user's month (manager).
	UserMonth(ctx context.Context, userID string, month *Month) (MonthView, error)

	// UserEvents lists another user's clock events (manager).
	UserEvents(ctx context.Context, userID string) (UserEventsView, error)

	// CreateManual records a clock event on behalf of a user (manager).
	CreateManual(ctx context.Context, req ManualEventRequest) (Event, error)

	// Void voids a clock event of userID (manager).
	Void(ctx context.Context, userID, eventID string, req VoidEventRequest) (Event, error)
}
