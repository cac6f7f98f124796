package schedule

import "context"

type ScheduleService interface {
	// Get returns the user's schedule, normalized to seven days.
	Get(ctx context.Context, userID string) (WeeklySchedule, error)
	// Save normalizes, validates and stores the user's schedule.
	Save(ctx context.Context, userID string, s WeeklySchedule) (WeeklySchedule, error)
}
