package client

import "errors"

var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNotFound              = errors.New("not found on server")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
