package storage

import "errors"

// Common vault storage errors
var (
	// ErrEntryNotFound indicates that no change log entry exists for an item
	ErrEntryNotFound = errors.New("change log entry not found")

	// ErrConflictNotFound indicates that conflict was not found
	ErrConflictNotFound = errors.New("conflict not found")

	// ErrConflictResolved indicates an attempt to re-resolve a conflict
	// that already reached a terminal resolution
	ErrConflictResolved = errors.New("conflict already resolved")

	// ErrStateNotFound indicates that no sync state exists for a peer
	ErrStateNotFound = errors.New("sync state not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
