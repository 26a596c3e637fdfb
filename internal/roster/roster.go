// Package roster manages the party's character records.
package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/tabletop/internal/confirm"
	"github.com/idilsaglam/tabletop/internal/model"
	"github.com/idilsaglam/tabletop/internal/session"
)

var (
	ErrNotFound         = errors.New("character not found")
	ErrInvalidCharacter = errors.New("invalid character")
)

type Roster struct {
	s *session.Session
}

func New(s *session.Session) *Roster {
	return &Roster{s: s}
}

// List returns a copy of the roster in creation order.
func (r *Roster) List() []model.Character {
	return r.s.Characters()
}

func (r *Roster) Get(id int64) (model.Character, bool) {
	cs := r.s.Characters()
	i := index(cs, id)
	if i < 0 {
		return model.Character{}, false
	}
	return cs[i], true
}

// Create assigns a fresh id and appends the character. Level defaults
// to 1 when not supplied.
func (r *Roster) Create(ctx context.Context, f model.CharacterFields) (model.Character, error) {
	c := f.Apply(model.Character{Level: 1})
	c.Name = strings.TrimSpace(c.Name)
	c.Class = strings.TrimSpace(c.Class)
	if err := validate(c); err != nil {
		return model.Character{}, err
	}
	c.ID = r.s.NextID()
	if err := r.s.SetCharacters(ctx, append(r.s.Characters(), c)); err != nil {
		return c, fmt.Errorf("save: %w", err)
	}
	r.s.Logger().Debug("character created", zap.Int64("id", c.ID), zap.String("name", c.Name))
	return c, nil
}

// Update merges the supplied fields into the character with id. Fields
// left nil keep their current value.
func (r *Roster) Update(ctx context.Context, id int64, f model.CharacterFields) (model.Character, error) {
	cs := r.s.Characters()
	i := index(cs, id)
	if i < 0 {
		return model.Character{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	c := f.Apply(cs[i])
	c.Name = strings.TrimSpace(c.Name)
	c.Class = strings.TrimSpace(c.Class)
	if err := validate(c); err != nil {
		return model.Character{}, err
	}
	cs[i] = c
	if err := r.s.SetCharacters(ctx, cs); err != nil {
		return c, fmt.Errorf("save: %w", err)
	}
	r.s.Logger().Debug("character updated", zap.Int64("id", id))
	return c, nil
}

// Delete removes the character with id once cf confirms. It reports
// whether anything was removed; an unknown id is a no-op and cf is not asked.
func (r *Roster) Delete(ctx context.Context, id int64, cf confirm.Confirmer) (bool, error) {
	cs := r.s.Characters()
	i := index(cs, id)
	if i < 0 {
		return false, nil
	}
	if !cf.Confirm(fmt.Sprintf("Delete %s?", cs[i].Name)) {
		return false, nil
	}
	if err := r.s.SetCharacters(ctx, append(cs[:i:i], cs[i+1:]...)); err != nil {
		return true, fmt.Errorf("save: %w", err)
	}
	r.s.Logger().Debug("character deleted", zap.Int64("id", id))
	return true, nil
}

func index(cs []model.Character, id int64) int {
	for i, c := range cs {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func validate(c model.Character) error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidCharacter)
	case c.Level < 1:
		return fmt.Errorf("%w: level must be at least 1, got %d", ErrInvalidCharacter, c.Level)
	case c.MaxHP < 0:
		return fmt.Errorf("%w: max hp must not be negative, got %d", ErrInvalidCharacter, c.MaxHP)
	}
	return nil
}
