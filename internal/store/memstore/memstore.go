// Package memstore is an in-process backend used by tests and
// ephemeral sessions. Nothing survives the process.
package memstore

import (
	"context"

	"github.com/idilsaglam/tabletop/internal/store/kv"
)

type Store struct {
	slots map[string][]byte
}

func New() *Store {
	return &Store{slots: map[string][]byte{}}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := s.slots[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.slots[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Close() error { return nil }
