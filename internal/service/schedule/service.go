package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-console/internal/domain/schedule"
)

type scheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository) schedule.ScheduleService {
	return &scheduleServiceImpl{scheduleRepo: scheduleRepo}
}

// Get implements schedule.ScheduleService. A user without a stored schedule
// gets the default week.
func (s *scheduleServiceImpl) Get(ctx context.Context, userID string) (schedule.WeeklySchedule, error) {
	if strings.TrimSpace(userID) == "" {
		return schedule.WeeklySchedule{}, schedule.ErrUserIDRequired
	}

	stored, err := s.scheduleRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, schedule.ErrWorkScheduleNotFound) {
		return schedule.WeeklySchedule{}, fmt.Errorf("get work schedule: %w", err)
	}
	return schedule.Normalize(stored), nil
}

// Save implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Save(ctx context.Context, userID string, in schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
	if strings.TrimSpace(userID) == "" {
		return schedule.WeeklySchedule{}, schedule.ErrUserIDRequired
	}

	normalized := schedule.Normalize(in)
	if err := normalized.Validate(); err != nil {
		return schedule.WeeklySchedule{}, err
	}

	saved, err := s.scheduleRepo.Save(ctx, userID, normalized)
	if err != nil {
		return schedule.WeeklySchedule{}, err
	}
	return schedule.Normalize(saved), nil
}
