// Package store persists the two tabletop collections to durable
// key-value storage under fixed slot names.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/idilsaglam/tabletop/internal/model"
	"github.com/idilsaglam/tabletop/internal/store/kv"
)

// Slot names shared with saves written by the browser app.
const (
	CharactersKey  = "dnd-characters"
	InitiativesKey = "dnd-initiatives"
)

// Snapshot is the decoded content of both slots.
type Snapshot struct {
	Characters  []model.Character
	Initiatives []model.InitiativeEntry
}

// Persistence encodes the collections as JSON arrays and mirrors them
// into a kv.Store.
type Persistence struct {
	backend kv.Store
	log     *zap.Logger
}

func NewPersistence(backend kv.Store, log *zap.Logger) *Persistence {
	if log == nil {
		log = zap.NewNop()
	}
	return &Persistence{backend: backend, log: log}
}

// Save writes both collections. Last write wins; the two slots are not
// written atomically.
func (p *Persistence) Save(ctx context.Context, characters []model.Character, initiatives []model.InitiativeEntry) error {
	if characters == nil {
		characters = []model.Character{}
	}
	if initiatives == nil {
		initiatives = []model.InitiativeEntry{}
	}
	cb, err := json.Marshal(characters)
	if err != nil {
		return fmt.Errorf("json marshal %s: %w", CharactersKey, err)
	}
	ib, err := json.Marshal(initiatives)
	if err != nil {
		return fmt.Errorf("json marshal %s: %w", InitiativesKey, err)
	}
	if err := p.backend.Put(ctx, CharactersKey, cb); err != nil {
		return fmt.Errorf("put %s: %w", CharactersKey, err)
	}
	if err := p.backend.Put(ctx, InitiativesKey, ib); err != nil {
		return fmt.Errorf("put %s: %w", InitiativesKey, err)
	}
	p.log.Debug("saved",
		zap.Int("characters", len(characters)),
		zap.Int("initiatives", len(initiatives)))
	return nil
}

// Load reads both slots. A slot that is missing, unreadable or not a
// valid JSON array loads as an empty collection; Load never fails.
func (p *Persistence) Load(ctx context.Context) Snapshot {
	return Snapshot{
		Characters:  loadSlot[model.Character](ctx, p, CharactersKey),
		Initiatives: loadSlot[model.InitiativeEntry](ctx, p, InitiativesKey),
	}
}

func loadSlot[T any](ctx context.Context, p *Persistence, key string) []T {
	b, err := p.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			p.log.Warn("read slot failed, starting empty", zap.String("slot", key), zap.Error(err))
		}
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		p.log.Warn("decode slot failed, starting empty", zap.String("slot", key), zap.Error(err))
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}
