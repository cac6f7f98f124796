package leave

import "context"

// LeaveRepository is the backend's leave resource.
type LeaveRepository interface {
	ListMine(ctx context.Context) ([]LeaveRequest, error)
	ListPending(ctx context.Context) ([]LeaveRequest, error)
	Create(ctx context.Context, req SubmitRequest) (LeaveRequest, error)
	Resolve(ctx context.Context, id string, req ResolveRequest) (LeaveRequest, error)
}
