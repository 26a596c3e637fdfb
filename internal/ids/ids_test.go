package ids

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func frozen(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestNextSameTick(t *testing.T) {
	g := &Generator{now: frozen(1000)}

	assert.Equal(t, int64(1000), g.Next())
	assert.Equal(t, int64(1001), g.Next())
	assert.Equal(t, int64(1002), g.Next())
}

func TestNextFollowsClock(t *testing.T) {
	g := &Generator{now: frozen(1000)}
	g.Next()
	g.now = frozen(5000)
	assert.Equal(t, int64(5000), g.Next())
}

func TestObserve(t *testing.T) {
	g := &Generator{now: frozen(1000)}
	g.Observe(9000)
	g.Observe(20)

	assert.Equal(t, int64(9001), g.Next())
}

func TestNextUnique(t *testing.T) {
	g := New()
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		id := g.Next()
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}
