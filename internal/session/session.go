// Package session owns the in-memory roster and initiative collections.
// They are populated from persistence at startup and flushed back after
// every mutation.
package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/idilsaglam/tabletop/internal/ids"
	"github.com/idilsaglam/tabletop/internal/model"
	"github.com/idilsaglam/tabletop/internal/store"
)

// Session is the single mutable state owner. It is not safe for
// concurrent use; every command runs to completion before the next.
type Session struct {
	characters  []model.Character
	initiatives []model.InitiativeEntry

	persist *store.Persistence
	ids     *ids.Generator
	log     *zap.Logger
}

// Open loads both collections. Records sharing an id within a collection
// (same-tick ids from older saves) get fresh ids, and the result is saved
// so later runs see the same ids.
func Open(ctx context.Context, p *store.Persistence, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	snap := p.Load(ctx)
	s := &Session{
		characters:  snap.Characters,
		initiatives: snap.Initiatives,
		persist:     p,
		ids:         ids.New(),
		log:         log,
	}
	for _, c := range s.characters {
		s.ids.Observe(c.ID)
	}
	for _, e := range s.initiatives {
		s.ids.Observe(e.ID)
	}

	if n := s.rekeyDuplicates(); n > 0 {
		log.Info("re-keyed duplicate ids", zap.Int("records", n))
		if err := s.flush(ctx); err != nil {
			log.Warn("save re-keyed ids", zap.Error(err))
		}
	}

	log.Debug("session opened",
		zap.Int("characters", len(s.characters)),
		zap.Int("initiatives", len(s.initiatives)))
	return s
}

func (s *Session) rekeyDuplicates() int {
	n := 0
	seen := make(map[int64]bool, len(s.characters))
	for i := range s.characters {
		if seen[s.characters[i].ID] {
			s.characters[i].ID = s.ids.Next()
			n++
		}
		seen[s.characters[i].ID] = true
	}
	seen = make(map[int64]bool, len(s.initiatives))
	for i := range s.initiatives {
		if seen[s.initiatives[i].ID] {
			s.initiatives[i].ID = s.ids.Next()
			n++
		}
		seen[s.initiatives[i].ID] = true
	}
	return n
}

// NextID returns an id unused by either collection.
func (s *Session) NextID() int64 { return s.ids.Next() }

// Characters returns a copy of the roster in creation order.
func (s *Session) Characters() []model.Character {
	return append([]model.Character(nil), s.characters...)
}

// Initiatives returns a copy of the turn order.
func (s *Session) Initiatives() []model.InitiativeEntry {
	return append([]model.InitiativeEntry(nil), s.initiatives...)
}

// SetCharacters replaces the roster and saves both collections.
func (s *Session) SetCharacters(ctx context.Context, cs []model.Character) error {
	s.characters = append([]model.Character{}, cs...)
	return s.flush(ctx)
}

// SetInitiatives replaces the turn order and saves both collections.
func (s *Session) SetInitiatives(ctx context.Context, es []model.InitiativeEntry) error {
	s.initiatives = append([]model.InitiativeEntry{}, es...)
	return s.flush(ctx)
}

func (s *Session) flush(ctx context.Context) error {
	return s.persist.Save(ctx, s.characters, s.initiatives)
}

func (s *Session) Logger() *zap.Logger { return s.log }
