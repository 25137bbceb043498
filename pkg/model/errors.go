package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrAlreadyExists  = errors.New("object already exists")
	ErrNotFound       = errors.New("not found")
	ErrUnknownBackend = errors.New("unknown backend")
	ErrUnknownGroup   = errors.New("unknown group")
)

// FetchError is returned when a backend fails to fetch or parse a feed.
// Fetch errors are never cached, the next attempt retries the backend.
type FetchError struct {
	Backend string
	URL     string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %q (backend %q): %v", e.URL, e.Backend, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StorageError is returned when the underlying database fails.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
