// Package kv provides the durable key-value stores task state is persisted to.
package kv

import (
	"context"
	"errors"
)

// Backend is a durable key-value store. Values are opaque bytes and every
// Set overwrites the previous value for the key.
type Backend interface {
	// Get returns the value stored under key, or KeyNotFoundError.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// IsNotFound reports whether err is a KeyNotFoundError.
func IsNotFound(err error) bool {
	var nf KeyNotFoundError
	return errors.As(err, &nf)
}
