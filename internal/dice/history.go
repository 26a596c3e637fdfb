package dice

import (
	"time"

	"github.com/google/uuid"
)

// HistoryLimit is how many results the roller keeps.
const HistoryLimit = 10

// Record is one entry in the result history.
type Record struct {
	ID     string
	Label  string
	Total  int
	Detail string
	At     time.Time
}

// History keeps the most recent results, newest first.
type History struct {
	records []Record
	now     func() time.Time
}

func NewHistory() *History {
	return &History{now: time.Now}
}

// Record prepends a result and evicts the oldest past HistoryLimit.
func (h *History) Record(label string, total int, detail string) Record {
	rec := Record{
		ID:     uuid.NewString(),
		Label:  label,
		Total:  total,
		Detail: detail,
		At:     h.now(),
	}
	h.records = append([]Record{rec}, h.records...)
	if len(h.records) > HistoryLimit {
		h.records = h.records[:HistoryLimit]
	}
	return rec
}

// Entries returns a copy, newest first.
func (h *History) Entries() []Record {
	return append([]Record(nil), h.records...)
}

func (h *History) Len() int { return len(h.records) }
