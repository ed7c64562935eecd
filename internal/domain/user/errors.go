package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameExists          = errors.New("username already registered")
	ErrUserAlreadyDeleted      = errors.New("user is already deleted")
	ErrUserNotDeleted          = errors.New("user is not deleted")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrCannotDeleteSelf        = errors.New("cannot delete your own account")
)
