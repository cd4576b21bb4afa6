package client

import "errors"

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("recipe not found")
)
