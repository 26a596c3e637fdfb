// Package ids hands out record ids. Ids stay millisecond timestamps so they
// read like the ones in older saves, but never repeat within a process.
package ids

import "time"

type Generator struct {
	last int64
	now  func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// Observe raises the floor so later ids are greater than id.
func (g *Generator) Observe(id int64) {
	if id > g.last {
		g.last = id
	}
}

// Next returns the current time in milliseconds, or last+1 when the clock
// has not moved past the previous id.
func (g *Generator) Next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
