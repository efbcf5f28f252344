package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrPhoneMismatch      = errors.New("phone does not match")
)
