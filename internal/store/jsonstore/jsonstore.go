package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/tabletop/internal/store/kv"
)

// JSON-backed storage. One human-readable file per slot.
// No locking; fine for a local single-user CLI.

const fileExt = ".json"

type Store struct {
	dir string
}

// Open prepares dir (created if missing) to hold slot files.
func Open(dir string) (*Store, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+fileExt)
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, value, "", "  "); err != nil {
		// Not JSON; store as-is.
		buf.Reset()
		buf.Write(value)
	}
	if err := os.WriteFile(s.path(key), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
