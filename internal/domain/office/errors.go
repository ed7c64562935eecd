package office

import "errors"

var (
	ErrOfficeConfigNotFound = errors.New("office MAC address is not configured")
	ErrOfficeConfigExists   = errors.New("office MAC address already configured, use update instead")
)
