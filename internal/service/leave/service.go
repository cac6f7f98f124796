package leave

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-console/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-console/internal/pkg/sse"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	publisher sse.GroupPublisher
}

func NewLeaveService(repo leave.LeaveRepository, publisher sse.GroupPublisher) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: repo,
		publisher:       publisher,
	}
}

// Mine implements leave.LeaveService.
func (l *LeaveServiceImpl) Mine(ctx context.Context) (leave.MyLeaveView, error) {
	list, err := l.ListMine(ctx)
	if err != nil {
		return leave.MyLeaveView{}, fmt.Errorf("list my leave requests: %w", err)
	}
	return leave.NewMyLeaveView(list), nil
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}
	created, err := l.Create(ctx, req)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	requester := created.RequesterID
	if requester == "" {
		if s, err := jwt.FromContext(ctx); err == nil {
			requester = s.UserID
		}
	}
	l.publisher.PublishToGroup(sse.GroupManagers, sse.NewEvent("", sse.EventLeaveSubmitted, leave.SubmittedEvent{
		LeaveID:     created.ID,
		RequesterID: requester,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}))
	return created, nil
}

// Pending implements leave.LeaveService.
func (l *LeaveServiceImpl) Pending(ctx context.Context) ([]leave.LeaveRequest, error) {
	list, err := l.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending leave requests: %w", err)
	}
	return leave.Pending(list), nil
}

// Resolve implements leave.LeaveService. Only a request still in the pending
// queue can be resolved.
func (l *LeaveServiceImpl) Resolve(ctx context.Context, id string, req leave.ResolveRequest) (leave.LeaveRequest, error) {
	if id == "" {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	pending, err := l.Pending(ctx)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	var current *leave.LeaveRequest
	for i := range pending {
		if pending[i].ID == id {
			current = &pending[i]
			break
		}
	}
	if current == nil {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	resolved, err := l.LeaveRepository.Resolve(ctx, id, req)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if resolved.ID == "" {
		resolved = *current
		resolved.Status = req.Status
		resolved.Paid = req.Paid
	}

	requester := resolved.RequesterID
	if requester == "" {
		requester = current.RequesterID
	}
	if requester != "" {
		l.publisher.Publish(requester, sse.NewEvent(requester, sse.EventLeaveResolved, leave.ResolvedEvent{
			LeaveID: resolved.ID,
			Status:  resolved.Status,
			Paid:    resolved.Paid,
		}))
	}
	return resolved, nil
}
