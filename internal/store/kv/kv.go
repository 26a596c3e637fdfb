// Package kv defines the contract every storage backend implements.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a slot has never been written.
var ErrNotFound = errors.New("kv: slot not found")

// Store is a durable key-value backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
