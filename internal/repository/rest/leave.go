package rest

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/leave"
)

type leaveRepositoryImpl struct {
	client *Client
}

func NewLeaveRepository(client *Client) leave.LeaveRepository {
	return &leaveRepositoryImpl{client: client}
}

// ListMine implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListMine(ctx context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	if err := r.client.get(ctx, "/permisos/mios", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPending implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	if err := r.client.get(ctx, "/permisos/pendientes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.SubmitRequest) (leave.LeaveRequest, error) {
	var out leave.LeaveRequest
	err := r.client.send(ctx, http.MethodPost, "/permisos", req, &out)
	return out, err
}

// Resolve implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Resolve(ctx context.Context, id string, req leave.ResolveRequest) (leave.LeaveRequest, error) {
	var out leave.LeaveRequest
	err := r.client.send(ctx, http.MethodPatch, "/permisos/"+escape(id), req, &out)
	return out, err
}
