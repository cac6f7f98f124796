package rest

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/user"
)

type userRepositoryImpl struct {
	client *Client
}

func NewUserRepository(client *Client) user.UserRepository {
	return &userRepositoryImpl{client: client}
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	var out []user.User
	if err := r.client.get(ctx, "/usuarios", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	var out user.User
	err := r.client.get(ctx, "/usuarios/"+escape(id), nil, &out)
	return out, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	var out user.User
	err := r.client.send(ctx, http.MethodPost, "/usuarios", req, &out)
	return out, err
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.User, error) {
	var out user.User
	err := r.client.send(ctx, http.MethodPatch, "/usuarios/"+escape(id), req, &out)
	return out, err
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.client.send(ctx, http.MethodDelete, "/usuarios/"+escape(id), nil, nil)
}
