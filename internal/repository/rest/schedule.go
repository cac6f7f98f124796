package rest

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/schedule"
)

type scheduleRepositoryImpl struct {
	client *Client
}

func NewScheduleRepository(client *Client) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{client: client}
}

// GetByUserID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByUserID(ctx context.Context, userID string) (schedule.WeeklySchedule, error) {
	var out schedule.WeeklySchedule
	if err := r.client.get(ctx, "/usuarios/"+escape(userID)+"/jornada", nil, &out); err != nil {
		if IsNotFound(err) {
			return schedule.WeeklySchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WeeklySchedule{}, err
	}
	return out, nil
}

// Save implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Save(ctx context.Context, userID string, s schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
	var out schedule.WeeklySchedule
	if err := r.client.send(ctx, http.MethodPut, "/usuarios/"+escape(userID)+"/jornada", s, &out); err != nil {
		return schedule.WeeklySchedule{}, err
	}
	if len(out.Days) == 0 {
		return s, nil
	}
	return out, nil
}
