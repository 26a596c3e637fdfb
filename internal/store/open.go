package store

import (
	"fmt"

	"github.com/idilsaglam/tabletop/internal/config"
	"github.com/idilsaglam/tabletop/internal/store/jsonstore"
	"github.com/idilsaglam/tabletop/internal/store/kv"
	"github.com/idilsaglam/tabletop/internal/store/memstore"
	"github.com/idilsaglam/tabletop/internal/store/sqlitestore"
)

const (
	ModeJSON   = "json"
	ModeSQLite = "sqlite"
	ModeMemory = "memory"
)

// Open returns the backend for the configured storage mode.
func Open(cfg config.Storage) (kv.Store, error) {
	switch cfg.Mode {
	case ModeJSON:
		return jsonstore.Open(cfg.Dir)
	case ModeSQLite:
		return sqlitestore.Open(cfg.SQLitePath)
	case ModeMemory:
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("store: unknown mode %q", cfg.Mode)
	}
}
