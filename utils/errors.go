package utils

import "errors"

// Sentinel errors matching the status codes handlers map them to.
var (
	ErrNotFound     = errors.New("record not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("duplicate record")
	ErrNoPermission = errors.New("you do not have permission")
)
