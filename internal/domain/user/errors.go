package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownRole        = errors.New("unknown role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSignupRejected     = errors.New("signup rejected")
)
