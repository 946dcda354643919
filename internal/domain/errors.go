package domain

import "errors"

var (
	ErrAlreadyRunning     = errors.New("another dhyan instance is already running")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrPlaybackFailure    = errors.New("playback failure")
)
