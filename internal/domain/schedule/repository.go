package schedule

import "context"

// ScheduleRepository is the backend's per-user schedule resource.
type ScheduleRepository interface {
	GetByUserID(ctx context.Context, userID string) (WeeklySchedule, error)
	Save(ctx context.Context, userID string, s WeeklySchedule) (WeeklySchedule, error)
}
