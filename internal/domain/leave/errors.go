package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
)
