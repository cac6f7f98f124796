package attendance

import "context"

// AttendanceRepository is the backend's attendance resource. The bearer token
// of the caller travels in ctx.
type AttendanceRepository interface {
	// ListMyDailySummary returns the caller's daily summaries in [from, to].
	ListMyDailySummary(ctx context.Context, from, to string) ([]DailySummary, error)
	ListUserDailySummary(ctx context.Context, userID, from, to string) ([]DailySummary, error)

	ListMyEvents(ctx context.Context) ([]Event, error)
	ListUserEvents(ctx context.Context, userID string) ([]Event, error)

	Mark(ctx context.Context, req MarkRequest) (Event, error)
	CreateManual(ctx context.Context, req ManualEventRequest) (Event, error)
	Void(ctx context.Context, eventID string, req VoidEventRequest) (Event, error)
}
