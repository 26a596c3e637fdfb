package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tabletop/internal/confirm"
	"github.com/idilsaglam/tabletop/internal/model"
	"github.com/idilsaglam/tabletop/internal/ui"
)

var charLabels = []string{"Name", "Class", "Level", "Max HP", "Current HP", "AC"}

// characterItem adapts model.Character to bubbles/list.Item.
type characterItem struct{ model.Character }

func (i characterItem) FilterValue() string { return i.Name }

func characterItems(chars []model.Character) []list.Item {
	out := make([]list.Item, len(chars))
	for i, c := range chars {
		out[i] = characterItem{c}
	}
	return out
}

// characterDelegate renders a character as a name line plus an hp bar.
type characterDelegate struct{}

func (d characterDelegate) Height() int                               { return 2 }
func (d characterDelegate) Spacing() int                              { return 1 }
func (d characterDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d characterDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(characterItem)
	if !ok {
		return
	}
	t := ui.Current()
	prefix := "  "
	name := it.Name
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
		name = t.Title.Render(name)
	}
	fmt.Fprintf(w, "%s%s  %s\n", prefix, name,
		t.Muted.Render(fmt.Sprintf("%s - Level %d  AC %d", it.Class, it.Level, it.AC)))
	fmt.Fprint(w, "  "+ui.HPBar(it.CurrentHP, it.MaxHP, 20))
}

func (m modelTUI) selectedCharacter() (model.Character, bool) {
	it, ok := m.chars.SelectedItem().(characterItem)
	return it.Character, ok
}

func (m modelTUI) characterKey(k tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(k, m.keys.Add):
		m.editID = 0
		m.charForm = newForm("Add Character", charLabels, nil)
		m.mode = modeCharForm
		cmd := m.charForm.focusField(0)
		return m, cmd, true

	case key.Matches(k, m.keys.Edit):
		c, ok := m.selectedCharacter()
		if !ok {
			return m, nil, true
		}
		m.editID = c.ID
		m.charForm = newForm("Edit Character", charLabels, []string{
			c.Name, c.Class,
			strconv.Itoa(c.Level), strconv.Itoa(c.MaxHP), strconv.Itoa(c.CurrentHP), strconv.Itoa(c.AC),
		})
		m.mode = modeCharForm
		cmd := m.charForm.focusField(0)
		return m, cmd, true

	case key.Matches(k, m.keys.Delete):
		c, ok := m.selectedCharacter()
		if !ok {
			return m, nil, true
		}
		return m.askConfirm(fmt.Sprintf("Delete %s?", c.Name), func() (string, error) {
			// the y/n line above is the confirmation
			removed, err := m.deps.Roster.Delete(m.ctx, c.ID, confirm.Always)
			if err != nil || !removed {
				return "nothing deleted", err
			}
			return "deleted " + c.Name, nil
		}), nil, true
	}
	return m, nil, false
}

func (m modelTUI) updateCharForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Cancel):
			m.mode = modeBrowse
			return m, nil
		case key.Matches(k, m.keys.NextField):
			cmd := m.charForm.focusField(m.charForm.focus + 1)
			return m, cmd
		case key.Matches(k, m.keys.PrevField):
			cmd := m.charForm.focusField(m.charForm.focus - 1)
			return m, cmd
		case key.Matches(k, m.keys.Submit):
			return m.submitCharForm()
		}
	}
	var cmd tea.Cmd
	m.charForm, cmd = m.charForm.update(msg)
	return m, cmd
}

func (m modelTUI) submitCharForm() (tea.Model, tea.Cmd) {
	f, err := formFields(m.charForm.values())
	if err != nil {
		m.charForm.err = err.Error()
		return m, nil
	}
	var c model.Character
	if m.editID == 0 {
		if f.CurrentHP == nil && f.MaxHP != nil {
			hp := *f.MaxHP
			f.CurrentHP = &hp
		}
		c, err = m.deps.Roster.Create(m.ctx, f)
	} else {
		c, err = m.deps.Roster.Update(m.ctx, m.editID, f)
	}
	if err != nil {
		m.charForm.err = err.Error()
		return m, nil
	}
	m.mode = modeBrowse
	m.setStatus("saved "+c.Name, nil)
	m.refresh()
	return m, nil
}

// formFields converts form values to a partial character. Blank values
// are left unsupplied.
func formFields(v []string) (model.CharacterFields, error) {
	var f model.CharacterFields
	if v[0] != "" {
		f.Name = &v[0]
	}
	if v[1] != "" {
		f.Class = &v[1]
	}
	ints := []**int{&f.Level, &f.MaxHP, &f.CurrentHP, &f.AC}
	for i, dst := range ints {
		s := v[i+2]
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return f, fmt.Errorf("%s must be a whole number", charLabels[i+2])
		}
		*dst = &n
	}
	return f, nil
}
