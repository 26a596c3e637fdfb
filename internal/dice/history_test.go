package dice

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryNewestFirst(t *testing.T) {
	h := NewHistory()
	h.Record("d20", 12, "")
	h.Record("2d6+3", 9, "Rolls: [2, 4] +3")

	e := h.Entries()
	require.Len(t, e, 2)
	assert.Equal(t, "2d6+3", e[0].Label)
	assert.Equal(t, "Rolls: [2, 4] +3", e[0].Detail)
	assert.Equal(t, "d20", e[1].Label)
	assert.NotEqual(t, e[0].ID, e[1].ID)
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory()
	for i := 1; i <= HistoryLimit+1; i++ {
		h.Record(fmt.Sprintf("roll-%d", i), i, "")
	}

	e := h.Entries()
	assert.Equal(t, HistoryLimit, h.Len())
	assert.Len(t, e, HistoryLimit)
	assert.Equal(t, "roll-11", e[0].Label)
	assert.Equal(t, "roll-2", e[len(e)-1].Label)
	for _, rec := range e {
		assert.NotEqual(t, "roll-1", rec.Label)
	}
}

func TestHistoryEntriesIsCopy(t *testing.T) {
	h := NewHistory()
	h.Record("d4", 3, "")
	e := h.Entries()
	e[0].Total = 99
	assert.Equal(t, 3, h.Entries()[0].Total)
}
