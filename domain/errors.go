package domain

import "errors"

// Sentinel errors shared by every storage backend. Handlers match them with
// errors.Is to pick the response status.
var (
	ErrGuestNotFound   = errors.New("guest not found")
	ErrTriggerNotFound = errors.New("marketing trigger not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrStatsNotFound   = errors.New("statistics not found")
)
