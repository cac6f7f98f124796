package user

import "context"

type UserService interface {
	// List returns the users matching filter.
	List(ctx context.Context, filter UserFilter) (UserListResponse, error)
	GetByID(ctx context.Context, id string) (User, error)
	// Create validates req, completes its schedule and creates the user.
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	// Update sends only the non-empty fields of req.
	Update(ctx context.Context, id string, req UpdateUserRequest) (User, error)
	Delete(ctx context.Context, actorID, id string) error
}
