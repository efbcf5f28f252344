package labour

import "errors"

var (
	ErrLabourNotFound         = errors.New("labour not found")
	ErrPhoneAlreadyRegistered = errors.New("phone already registered as a user")
)
