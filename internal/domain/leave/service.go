package leave

import (
	"context"
)

type LeaveService interface {
	// Mine lists the caller's requests.
	Mine(ctx context.Context) (MyLeaveView, error)
	// Submit files a new request for the caller.
	Submit(ctx context.Context, req SubmitRequest) (LeaveRequest, error)
	// Pending lists every pending request (manager).
	Pending(ctx context.Context) ([]LeaveRequest, error)
	// Resolve approves or rejects a pending request (manager).
	Resolve(ctx context.Context, id string, req ResolveRequest) (LeaveRequest, error)
}
