package session

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("access denied for this role")
	ErrSessionNotFound  = errors.New("session not found")
)
