// Package storage provides the key-value persistence layer for the board.
// It mirrors a browser's local storage: a handful of independent string
// keys, each holding one JSON value, best-effort durability.
package storage

import "errors"

// Storage keys. Each is an independent entry; there is no transaction
// spanning keys and no coordination between processes sharing a store.
const (
	KeyTasks    = "taskboard_tasks"
	KeyActivity = "taskboard_activity"
	KeyAuth     = "taskboard_auth"
	KeyRemember = "taskboard_remember"
)

// ErrNoValue is returned by Get when the key has never been set
// or has been deleted.
var ErrNoValue = errors.New("no value for key")

// Store is a minimal key-value store
type Store interface {
	// Get returns the value for key, or ErrNoValue if absent
	Get(key string) ([]byte, error)
	// Set writes the value for key, replacing any previous value
	Set(key string, value []byte) error
	// Delete removes the key; removing an absent key is not an error
	Delete(key string) error
}
