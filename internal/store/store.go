// Package store provides the key-value persistence layer.
//
// Records are JSON documents addressed by flat string keys of the form
// "<kind>:<id>". Prefix scans emulate "list all records of kind X".
// Individual operations are atomic per key; no operation spans multiple
// keys transactionally.
package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value contract the repositories are built on.
type Store interface {
	// Get returns the raw JSON value stored at key.
	// Returns ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value at key, overwriting any existing record.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the record at key.
	// Returns ErrKeyNotFound if the key does not exist.
	Delete(ctx context.Context, key string) error

	// GetByPrefix returns the raw values of all keys beginning with
	// prefix. Order is unspecified.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
