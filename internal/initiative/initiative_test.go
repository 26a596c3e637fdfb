package initiative

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/idilsaglam/tabletop/internal/confirm"
	"github.com/idilsaglam/tabletop/internal/model"
	"github.com/idilsaglam/tabletop/internal/session"
	"github.com/idilsaglam/tabletop/internal/store"
	"github.com/idilsaglam/tabletop/internal/store/memstore"
)

func newTestTracker(t *testing.T) (*Tracker, *store.Persistence) {
	t.Helper()
	p := store.NewPersistence(memstore.New(), zap.NewNop())
	return New(session.Open(context.Background(), p, zap.NewNop())), p
}

func names(entries []model.InitiativeEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestAddSortsDescending(t *testing.T) {
	tr, p := newTestTracker(t)
	ctx := context.Background()

	for _, in := range [][2]string{{"A", "10"}, {"B", "20"}, {"C", "5"}} {
		_, err := tr.Add(ctx, in[0], in[1])
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"B", "A", "C"}, names(tr.Entries()))
	assert.Equal(t, tr.Entries(), p.Load(ctx).Initiatives)

	active, ok := tr.Active()
	require.True(t, ok)
	assert.Equal(t, "B", active.Name)
}

func TestAddTiesKeepInsertionOrder(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for _, in := range [][2]string{{"Orc", "12"}, {"Elf", "15"}, {"Goblin", "12"}, {"Wolf", "12"}, {"Rat", "-1"}} {
		_, err := tr.Add(ctx, in[0], in[1])
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"Elf", "Orc", "Goblin", "Wolf", "Rat"}, names(tr.Entries()))
}

func TestAddTrimsAndParses(t *testing.T) {
	tr, _ := newTestTracker(t)

	e, err := tr.Add(context.Background(), "  Kobold ", " -3 ")
	require.NoError(t, err)
	assert.Equal(t, "Kobold", e.Name)
	assert.Equal(t, -3, e.Value)
	assert.NotZero(t, e.ID)
}

func TestAddRejects(t *testing.T) {
	tests := []struct {
		name    string
		in      [2]string
		wantErr error
	}{
		{"empty name", [2]string{"", "10"}, ErrMissingName},
		{"blank name", [2]string{"   ", "10"}, ErrMissingName},
		{"empty value", [2]string{"Orc", ""}, ErrInvalidValue},
		{"not a number", [2]string{"Orc", "fast"}, ErrInvalidValue},
		{"decimal", [2]string{"Orc", "1.5"}, ErrInvalidValue},
		{"trailing junk", [2]string{"Orc", "12abc"}, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, p := newTestTracker(t)
			ctx := context.Background()
			_, err := tr.Add(ctx, "Elf", "3")
			require.NoError(t, err)
			before := tr.Entries()

			_, err = tr.Add(ctx, tt.in[0], tt.in[1])
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, tr.Entries())
			assert.Equal(t, before, p.Load(ctx).Initiatives)
		})
	}
}

func TestRemove(t *testing.T) {
	tr, p := newTestTracker(t)
	ctx := context.Background()
	a, _ := tr.Add(ctx, "A", "1")
	b, _ := tr.Add(ctx, "B", "2")

	removed, err := tr.Remove(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []model.InitiativeEntry{a}, tr.Entries())
	assert.Equal(t, []model.InitiativeEntry{a}, p.Load(ctx).Initiatives)

	removed, err = tr.Remove(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, tr.Entries(), 1)
}

func TestClearAll(t *testing.T) {
	tr, p := newTestTracker(t)
	ctx := context.Background()
	_, _ = tr.Add(ctx, "A", "1")
	_, _ = tr.Add(ctx, "B", "2")

	cleared, err := tr.ClearAll(ctx, confirm.Never)
	require.NoError(t, err)
	assert.False(t, cleared)
	assert.Len(t, tr.Entries(), 2)

	cleared, err = tr.ClearAll(ctx, confirm.Always)
	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Empty(t, tr.Entries())
	assert.Empty(t, p.Load(ctx).Initiatives)

	_, ok := tr.Active()
	assert.False(t, ok)
}

func TestClearAllEmptyDoesNotAsk(t *testing.T) {
	tr, _ := newTestTracker(t)
	asked := false
	cleared, err := tr.ClearAll(context.Background(), confirm.Func(func(string) bool {
		asked = true
		return true
	}))
	require.NoError(t, err)
	assert.False(t, cleared)
	assert.False(t, asked)
}

func TestSortStable(t *testing.T) {
	entries := []model.InitiativeEntry{
		{ID: 1, Name: "a", Value: 3},
		{ID: 2, Name: "b", Value: 9},
		{ID: 3, Name: "c", Value: 3},
		{ID: 4, Name: "d", Value: 9},
	}
	Sort(entries)
	assert.Equal(t, []string{"b", "d", "a", "c"}, names(entries))
}
