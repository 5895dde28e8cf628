package storage

import "errors"

// Common client storage errors
var (
	// ErrTimestampNotFound indicates that no login timestamp was recorded for the user
	ErrTimestampNotFound = errors.New("login timestamp not found")

	// ErrBindingNotFound indicates that the owner has no bound account
	ErrBindingNotFound = errors.New("binding not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
