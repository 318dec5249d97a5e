package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogem/adminjournal/models"
)

// Backend is a destination able to durably record journal entries.
//
// Persist returns nil only when the entry has been handed off for good.
// Backends never retry; retry policy belongs to the caller.
type Backend interface {
	// Name returns the registry key of the backend
	Name() string
	// Persist records a single entry
	Persist(ctx context.Context, entry *models.Entry) error
}

// ErrPersistence matches every PersistenceError via errors.Is
var ErrPersistence = errors.New("journal entry not persisted")

// ErrNilEntry is returned when Persist is called without an entry
var ErrNilEntry = errors.New("nil journal entry")

// PersistenceError reports a failed write in a backend
type PersistenceError struct {
	Backend string
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s backend: %v", e.Backend, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrPersistence) match
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func persistErr(backend string, err error) error {
	return &PersistenceError{Backend: backend, Err: err}
}
