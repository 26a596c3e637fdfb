package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/tabletop/internal/roster"
)

// HPBar renders a bar filled to current/max (clamped to the bar), colored
// by hp band, followed by "current / max HP".
func HPBar(current, max, width int) string {
	t := Current()
	if width < 5 {
		width = 5
	}
	st := roster.DeriveHPStatus(current, max)
	filled := int(st.Ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d / %d HP", t.BandStyle(st.Band).Render(bar), current, max)
}
