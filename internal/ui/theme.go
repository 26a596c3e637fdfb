package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tabletop/internal/model"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected                                      lipgloss.Style
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor
	BarFull, BarEmpty                             string
	SymOK, SymFail, SymWarn, SymActive            string
}

var current = themeFor("classic")

func SetTheme(name string) { current = themeFor(name) }

// Current exposes what renderers need.
func Current() Theme { return current }

func themeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:    "neon",
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			BarFull:     "▰", BarEmpty: "▱",
			SymOK: "✔", SymFail: "✖", SymWarn: "!", SymActive: "➤",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,

			Selected:    plain,
			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},
			BarFull:     "#", BarEmpty: ".",
			SymOK: "ok", SymFail: "error:", SymWarn: "note:", SymActive: ">",
		}
	default: // classic
		return Theme{
			Name:    "classic",
			Title:   lipgloss.NewStyle().Bold(true),
			Muted:   lipgloss.NewStyle().Faint(true),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			BarFull:     "█", BarEmpty: "░",
			SymOK: "✔", SymFail: "✖", SymWarn: "•", SymActive: "▶",
		}
	}
}

// BandStyle colors an hp band.
func (t Theme) BandStyle(b model.Band) lipgloss.Style {
	switch b {
	case model.BandCritical:
		return t.Error
	case model.BandLow:
		return t.Pending
	case model.BandNormal:
		return t.Success
	default:
		return t.Muted
	}
}
