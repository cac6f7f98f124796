package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserIDRequired          = errors.New("user ID is required")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrNothingToUpdate         = errors.New("no fields to update")
	ErrCannotDeleteSelf        = errors.New("cannot delete the signed-in user")
)
