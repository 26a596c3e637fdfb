package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tabletop/internal/confirm"
	"github.com/idilsaglam/tabletop/internal/model"
	"github.com/idilsaglam/tabletop/internal/ui"
)

type initiativeItem struct{ model.InitiativeEntry }

func (i initiativeItem) FilterValue() string { return i.Name }

func initiativeItems(entries []model.InitiativeEntry) []list.Item {
	out := make([]list.Item, len(entries))
	for i, e := range entries {
		out[i] = initiativeItem{e}
	}
	return out
}

// initiativeDelegate marks the first entry as the active turn.
type initiativeDelegate struct{}

func (d initiativeDelegate) Height() int                               { return 1 }
func (d initiativeDelegate) Spacing() int                              { return 0 }
func (d initiativeDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d initiativeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(initiativeItem)
	if !ok {
		return
	}
	t := ui.Current()
	cursor := "  "
	if index == m.Index() {
		cursor = t.Selected.Render("> ")
	}
	turn := "  "
	name := it.Name
	if index == 0 {
		turn = t.Accent.Render(t.SymActive) + " "
		name = t.Title.Render(name)
	}
	fmt.Fprintf(w, "%s%s%4d  %s", cursor, turn, it.Value, name)
}

func (m modelTUI) initiativeKey(k tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(k, m.keys.Add):
		m.initForm = newForm("Add Combatant", []string{"Name", "Initiative"}, nil)
		m.mode = modeInitForm
		cmd := m.initForm.focusField(0)
		return m, cmd, true

	case key.Matches(k, m.keys.Delete):
		it, ok := m.inits.SelectedItem().(initiativeItem)
		if !ok {
			return m, nil, true
		}
		_, err := m.deps.Initiative.Remove(m.ctx, it.ID)
		m.setStatus("removed "+it.Name, err)
		m.refresh()
		return m, nil, true

	case key.Matches(k, m.keys.Clear):
		if len(m.deps.Initiative.Entries()) == 0 {
			return m, nil, true
		}
		return m.askConfirm("Clear all initiatives?", func() (string, error) {
			cleared, err := m.deps.Initiative.ClearAll(m.ctx, confirm.Always)
			if err != nil || !cleared {
				return "nothing cleared", err
			}
			return "cleared turn order", nil
		}), nil, true
	}
	return m, nil, false
}

func (m modelTUI) updateInitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Cancel):
			m.mode = modeBrowse
			return m, nil
		case key.Matches(k, m.keys.NextField):
			cmd := m.initForm.focusField(m.initForm.focus + 1)
			return m, cmd
		case key.Matches(k, m.keys.PrevField):
			cmd := m.initForm.focusField(m.initForm.focus - 1)
			return m, cmd
		case key.Matches(k, m.keys.Submit):
			v := m.initForm.values()
			e, err := m.deps.Initiative.Add(m.ctx, v[0], v[1])
			if err != nil {
				m.initForm.err = err.Error()
				return m, nil
			}
			m.setStatus(fmt.Sprintf("added %s at %d", e.Name, e.Value), nil)
			m.refresh()
			// stay open for the next combatant, like the browser form
			m.initForm = newForm("Add Combatant", []string{"Name", "Initiative"}, nil)
			cmd := m.initForm.focusField(0)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.initForm, cmd = m.initForm.update(msg)
	return m, cmd
}
