package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tabletop/internal/dice"
	"github.com/idilsaglam/tabletop/internal/ui"
)

func (m modelTUI) diceKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.FixedDie):
		i := int(k.String()[0] - '1')
		if i < 0 || i >= len(dice.FixedDice) {
			return m, nil
		}
		sides := dice.FixedDice[i]
		v, err := m.deps.Roller.RollSingle(sides)
		if err != nil {
			m.setStatus("", err)
			return m, nil
		}
		m.deps.History.Record(fmt.Sprintf("d%d", sides), v, "")
		m.status = ""
	case key.Matches(k, m.keys.Notation):
		m.mode = modeNotation
		m.notationErr = ""
		m.notation.SetValue("")
		cmd := m.notation.Focus()
		return m, cmd
	}
	return m, nil
}

func (m modelTUI) updateNotation(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Cancel):
			m.mode = modeBrowse
			m.notation.Blur()
			return m, nil
		case key.Matches(k, m.keys.Submit):
			text := strings.TrimSpace(m.notation.Value())
			if text == "" {
				return m, nil
			}
			res, err := m.deps.Roller.RollNotation(text)
			if err != nil {
				m.notationErr = err.Error()
				return m, nil
			}
			m.deps.History.Record(text, res.Total, res.Detail())
			m.notation.SetValue("")
			m.notationErr = ""
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.notation, cmd = m.notation.Update(msg)
	return m, cmd
}

func (m modelTUI) diceView() string {
	t := ui.Current()
	var b strings.Builder

	buttons := make([]string, len(dice.FixedDice))
	for i, sides := range dice.FixedDice {
		buttons[i] = fmt.Sprintf("%s d%d", t.Accent.Render(fmt.Sprintf("[%d]", i+1)), sides)
	}
	b.WriteString(strings.Join(buttons, "  "))
	b.WriteString("\n\n")

	if m.mode == modeNotation {
		b.WriteString(m.notation.View())
		if m.notationErr != "" {
			b.WriteString("\n" + t.Error.Render(m.notationErr))
		}
		b.WriteString("\n\n")
	}

	records := m.deps.History.Entries()
	if len(records) == 0 {
		b.WriteString(t.Muted.Render("No rolls yet."))
		return b.String()
	}
	for i, r := range records {
		total := t.Accent.Render(fmt.Sprintf("%4d", r.Total))
		if i == 0 {
			total = t.Title.Render(fmt.Sprintf("%4d", r.Total))
		}
		line := fmt.Sprintf("%-10s %s", r.Label, total)
		if r.Detail != "" {
			line += "  " + t.Muted.Render(r.Detail)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
