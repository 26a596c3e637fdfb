package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tabletop/internal/ui"
)

// form is a column of labelled text inputs with one focused at a time.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	err    string
}

func newForm(title string, labels, values []string) form {
	f := form{title: title, labels: labels}
	for i := range labels {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 64
		if i < len(values) {
			ti.SetValue(values[i])
			ti.CursorEnd()
		}
		f.inputs = append(f.inputs, ti)
	}
	return f
}

func (f *form) focusField(i int) tea.Cmd {
	n := len(f.inputs)
	f.inputs[f.focus].Blur()
	f.focus = ((i % n) + n) % n
	return f.inputs[f.focus].Focus()
}

func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f form) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

func (f form) view() string {
	t := ui.Current()
	width := 0
	for _, l := range f.labels {
		width = max(width, len(l))
	}
	title := f.title
	if f.err != "" {
		title += "  " + t.Error.Render(f.err)
	}
	lines := []string{t.Title.Render(title)}
	for i, in := range f.inputs {
		label := f.labels[i] + strings.Repeat(" ", width-len(f.labels[i]))
		if i == f.focus {
			label = t.Accent.Render(label)
		} else {
			label = t.Muted.Render(label)
		}
		lines = append(lines, label+" "+in.View())
	}
	return ui.PanelString(strings.Join(lines, "\n"))
}
