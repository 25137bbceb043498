package db

import (
	"context"
)

type Version int

const (
	CurrentVersion = 1
)

type Storage interface {
	Close() error
	Version() (int, error)

	// Tree opens a named collection. Trees are independent namespaces,
	// the same key may exist in several of them.
	Tree(name string) Tree
}

// Tree is a durable string map. Every operation is atomic per key.
type Tree interface {
	// Contains reports whether key exists
	Contains(ctx context.Context, key string) (bool, error)

	// Get returns the value stored under key or model.ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Put inserts or overwrites key
	Put(ctx context.Context, key string, value string) error

	// Delete removes key, deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Update atomically replaces the value of key with the result of cb.
	// cb receives nil when the key is absent; returning nil removes the key.
	Update(ctx context.Context, key string, cb func(old *string) *string) error

	// Walk iterates over all key/value pairs of the tree
	Walk(ctx context.Context, cb func(key string, value string) error) error
}
