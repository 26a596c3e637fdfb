// Package initiative tracks combat turn order.
package initiative

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/tabletop/internal/confirm"
	"github.com/idilsaglam/tabletop/internal/model"
	"github.com/idilsaglam/tabletop/internal/session"
)

var (
	ErrMissingName  = errors.New("initiative name is required")
	ErrInvalidValue = errors.New("initiative value must be a whole number")
)

type Tracker struct {
	s *session.Session
}

func New(s *session.Session) *Tracker {
	return &Tracker{s: s}
}

// Entries returns a copy of the turn order, highest value first.
func (t *Tracker) Entries() []model.InitiativeEntry {
	return t.s.Initiatives()
}

// Active returns the entry whose turn it is: the first in order.
func (t *Tracker) Active() (model.InitiativeEntry, bool) {
	es := t.s.Initiatives()
	if len(es) == 0 {
		return model.InitiativeEntry{}, false
	}
	return es[0], true
}

// Add validates name and value, appends the entry and re-sorts. On a
// validation error nothing changes.
func (t *Tracker) Add(ctx context.Context, name, value string) (model.InitiativeEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.InitiativeEntry{}, ErrMissingName
	}
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return model.InitiativeEntry{}, fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}

	e := model.InitiativeEntry{ID: t.s.NextID(), Name: name, Value: v}
	es := append(t.s.Initiatives(), e)
	Sort(es)
	if err := t.s.SetInitiatives(ctx, es); err != nil {
		return e, fmt.Errorf("save: %w", err)
	}
	t.s.Logger().Debug("initiative added", zap.Int64("id", e.ID), zap.String("name", name), zap.Int("value", v))
	return e, nil
}

// Remove drops the entry with id. An unknown id is a no-op.
func (t *Tracker) Remove(ctx context.Context, id int64) (bool, error) {
	es := t.s.Initiatives()
	for i, e := range es {
		if e.ID != id {
			continue
		}
		if err := t.s.SetInitiatives(ctx, append(es[:i:i], es[i+1:]...)); err != nil {
			return true, fmt.Errorf("save: %w", err)
		}
		t.s.Logger().Debug("initiative removed", zap.Int64("id", id))
		return true, nil
	}
	return false, nil
}

// ClearAll empties the order once cf confirms. An empty order is left
// alone without asking.
func (t *Tracker) ClearAll(ctx context.Context, cf confirm.Confirmer) (bool, error) {
	if len(t.s.Initiatives()) == 0 {
		return false, nil
	}
	if !cf.Confirm("Clear all initiatives?") {
		return false, nil
	}
	if err := t.s.SetInitiatives(ctx, nil); err != nil {
		return true, fmt.Errorf("save: %w", err)
	}
	t.s.Logger().Debug("initiatives cleared")
	return true, nil
}

// Sort orders entries by value, highest first. Ties keep their current
// relative order, so earlier additions act first.
func Sort(entries []model.InitiativeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
}
