// Package tui is the interactive three-panel front end: characters, dice
// and initiative.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tabletop/internal/dice"
	"github.com/idilsaglam/tabletop/internal/initiative"
	"github.com/idilsaglam/tabletop/internal/roster"
	"github.com/idilsaglam/tabletop/internal/ui"
)

// Deps are the modules the TUI drives.
type Deps struct {
	Roster     *roster.Roster
	Initiative *initiative.Tracker
	Roller     *dice.Roller
	History    *dice.History
}

type tab int

const (
	tabCharacters tab = iota
	tabDice
	tabInitiative
	tabCount
)

var tabNames = [tabCount]string{"Characters", "Dice", "Initiative"}

type mode int

const (
	modeBrowse mode = iota
	modeCharForm
	modeInitForm
	modeNotation
	modeConfirm
)

// pendingConfirm is a destructive action waiting for y/n.
type pendingConfirm struct {
	prompt string
	run    func() (string, error)
}

type modelTUI struct {
	ctx  context.Context
	deps Deps
	keys keyMap
	help help.Model

	tab  tab
	mode mode

	chars list.Model
	inits list.Model

	charForm    form
	editID      int64 // 0 while creating
	initForm    form
	notation    textinput.Model
	notationErr string
	pending     *pendingConfirm

	status    string
	statusErr bool

	width, height int
}

// Run starts the Bubble Tea program. Every change is persisted by the
// modules as it happens, so quitting needs no extra save.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(newModel(ctx, deps), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newModel(ctx context.Context, deps Deps) modelTUI {
	m := modelTUI{
		ctx:    ctx,
		deps:   deps,
		keys:   defaultKeys(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	m.chars = newList("Characters", characterDelegate{})
	m.inits = newList("Initiative", initiativeDelegate{})
	m.notation = textinput.New()
	m.notation.Prompt = "roll> "
	m.notation.Placeholder = "2d6+3"
	m.notation.CharLimit = 32
	m.refresh()
	m.resize()
	return m
}

func newList(title string, d list.ItemDelegate) list.Model {
	l := list.New(nil, d, 0, 0)
	l.Title = title
	l.Styles.Title = ui.Current().Title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	return l
}

// refresh reloads both lists from the modules.
func (m *modelTUI) refresh() {
	m.chars.SetItems(characterItems(m.deps.Roster.List()))
	m.inits.SetItems(initiativeItems(m.deps.Initiative.Entries()))
}

func (m *modelTUI) resize() {
	h := m.height - 8
	if h < 4 {
		h = 4
	}
	m.chars.SetSize(m.width-4, h)
	m.inits.SetSize(m.width-4, h)
}

func (m *modelTUI) setStatus(msg string, err error) {
	if err != nil {
		m.status, m.statusErr = err.Error(), true
		return
	}
	m.status, m.statusErr = msg, false
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case modeConfirm:
		return m.updateConfirm(msg)
	case modeCharForm:
		return m.updateCharForm(msg)
	case modeInitForm:
		return m.updateInitForm(msg)
	case modeNotation:
		return m.updateNotation(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(k, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			return m, nil
		case key.Matches(k, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			return m, nil
		}
		switch m.tab {
		case tabCharacters:
			if next, cmd, handled := m.characterKey(k); handled {
				return next, cmd
			}
		case tabDice:
			return m.diceKey(k)
		case tabInitiative:
			if next, cmd, handled := m.initiativeKey(k); handled {
				return next, cmd
			}
		}
	}

	var cmd tea.Cmd
	switch m.tab {
	case tabCharacters:
		m.chars, cmd = m.chars.Update(msg)
	case tabInitiative:
		m.inits, cmd = m.inits.Update(msg)
	}
	return m, cmd
}

func (m modelTUI) askConfirm(prompt string, run func() (string, error)) modelTUI {
	m.pending = &pendingConfirm{prompt: prompt, run: run}
	m.mode = modeConfirm
	return m
}

func (m modelTUI) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Yes):
		m.setStatus(m.pending.run())
		m.refresh()
	case key.Matches(k, m.keys.No):
		m.setStatus("cancelled", nil)
	default:
		return m, nil
	}
	m.pending = nil
	m.mode = modeBrowse
	return m, nil
}

func (m modelTUI) View() string {
	t := ui.Current()

	tabs := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if tab(i) == m.tab {
			tabs = append(tabs, t.Selected.Render(" "+name+" "))
		} else {
			tabs = append(tabs, t.Muted.Render(" "+name+" "))
		}
	}
	header := strings.Join(tabs, " ")

	var body string
	switch m.tab {
	case tabCharacters:
		body = m.chars.View()
		if m.mode == modeCharForm {
			body = m.charForm.view()
		}
	case tabDice:
		body = m.diceView()
	case tabInitiative:
		body = m.inits.View()
		if m.mode == modeInitForm {
			body = m.initForm.view()
		}
	}

	footer := m.help.ShortHelpView(m.helpKeys())
	if m.mode == modeConfirm && m.pending != nil {
		footer = t.Pending.Render(m.pending.prompt+" [y/N]") + "  " + footer
	} else if m.status != "" {
		st := t.Success
		if m.statusErr {
			st = t.Error
		}
		footer = st.Render(m.status) + "\n" + footer
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
	return ui.PanelString(content)
}

func (m modelTUI) helpKeys() []key.Binding {
	switch m.mode {
	case modeConfirm:
		return []key.Binding{m.keys.Yes, m.keys.No}
	case modeCharForm, modeInitForm:
		return []key.Binding{m.keys.Submit, m.keys.NextField, m.keys.Cancel}
	case modeNotation:
		return []key.Binding{m.keys.Submit, m.keys.Cancel}
	}
	switch m.tab {
	case tabCharacters:
		return []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.NextTab, m.keys.Quit}
	case tabDice:
		return []key.Binding{m.keys.FixedDie, m.keys.Notation, m.keys.NextTab, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Clear, m.keys.NextTab, m.keys.Quit}
	}
}
