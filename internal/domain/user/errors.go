package user

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrContractorAccessRequired = errors.New("contractor role required")
	ErrLabourAccessRequired     = errors.New("labour role required")
)
