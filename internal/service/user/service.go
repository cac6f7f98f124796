package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-console/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type UserServiceImpl struct {
	userRepo  user.UserRepository
	leaveRepo leave.LeaveRepository
}

func NewUserService(userRepo user.UserRepository, leaveRepo leave.LeaveRepository) user.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		leaveRepo: leaveRepo,
	}
}

// List implements user.UserService. The overview counts every user, the list
// only the ones matching filter.
func (s *UserServiceImpl) List(ctx context.Context, filter user.UserFilter) (user.UserListResponse, error) {
	var (
		users   []user.User
		pending []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.userRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = s.leaveRepo.ListPending(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return user.UserListResponse{}, err
	}

	filtered := filter.Apply(users)
	return user.UserListResponse{
		Users:    filtered,
		Total:    len(filtered),
		Overview: user.NewOverview(users, leave.RequestersWithPending(pending)),
	}, nil
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	if strings.TrimSpace(id) == "" {
		return user.User{}, user.ErrUserIDRequired
	}
	return s.userRepo.GetByID(ctx, id)
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}
	created, err := s.userRepo.Create(ctx, req)
	if err != nil {
		return user.User{}, err
	}
	return created, nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.User, error) {
	if strings.TrimSpace(id) == "" {
		return user.User{}, user.ErrUserIDRequired
	}
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}
	updated, err := s.userRepo.Update(ctx, id, req)
	if err != nil {
		return user.User{}, fmt.Errorf("update user %s: %w", id, err)
	}
	return updated, nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, actorID, id string) error {
	if strings.TrimSpace(id) == "" {
		return user.ErrUserIDRequired
	}
	if id == actorID {
		return user.ErrCannotDeleteSelf
	}
	return s.userRepo.Delete(ctx, id)
}
