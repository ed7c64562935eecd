package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeAlreadyDeleted  = errors.New("employee is already deleted")
	ErrEmployeeNotDeleted      = errors.New("employee is not deleted")
	ErrUsernameExists          = errors.New("username already registered")
	ErrDeviceAlreadyRegistered = errors.New("device MAC address is registered to another employee")
)
