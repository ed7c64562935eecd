package leave

import "errors"

var (
	ErrRequestNotFound         = errors.New("request not found")
	ErrRequestAlreadyProcessed = errors.New("request already processed")
	ErrInvalidKind             = errors.New("invalid request kind")
)
