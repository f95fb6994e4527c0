package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound           = errors.New("task not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// StorageError represents a failure at the load/save boundary. Callers of
// the stores never see these; they are logged and swallowed, with in-memory
// state remaining the source of truth.
type StorageError struct {
	Op  string // Operation: "load", "save", "delete"
	Key string // Storage key involved
	Err error  // Underlying error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s [%s]: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
