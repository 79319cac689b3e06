package userservice

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateID     = errors.New("user id already exists")
	ErrInvalidUserData = errors.New("not valid request data")
)

const (
	// Error messages for user service operations
	ErrFailedToCreateUser  = "failed to create user"
	ErrFailedToCreateUsers = "failed to create users"
	ErrFailedToUpdateUser  = "failed to update user"
	ErrFailedToDeleteUser  = "failed to delete user"
	ErrRetrievingUser      = "error retrieving user"
)
