package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/idilsaglam/tabletop/internal/dice"
	"github.com/idilsaglam/tabletop/internal/initiative"
	"github.com/idilsaglam/tabletop/internal/model"
	"github.com/idilsaglam/tabletop/internal/roster"
	"github.com/idilsaglam/tabletop/internal/session"
	"github.com/idilsaglam/tabletop/internal/store"
	"github.com/idilsaglam/tabletop/internal/store/memstore"
)

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	p := store.NewPersistence(memstore.New(), zap.NewNop())
	s := session.Open(context.Background(), p, zap.NewNop())
	roller, err := dice.NewRoller(1)
	require.NoError(t, err)
	return Deps{
		Roster:     roster.New(s),
		Initiative: initiative.New(s),
		Roller:     roller,
		History:    dice.NewHistory(),
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter  = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey = tea.KeyMsg{Type: tea.KeyTab}
	esc    = tea.KeyMsg{Type: tea.KeyEsc}
)

func press(t *testing.T, m tea.Model, msgs ...tea.Msg) modelTUI {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	out, ok := m.(modelTUI)
	require.True(t, ok)
	return out
}

func typeText(s string) []tea.Msg {
	out := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		out = append(out, runes(string(r)))
	}
	return out
}

func TestTabsCycle(t *testing.T) {
	m := newModel(context.Background(), newTestDeps(t))
	assert.Equal(t, tabCharacters, m.tab)

	m = press(t, m, tabKey)
	assert.Equal(t, tabDice, m.tab)
	m = press(t, m, tabKey, tabKey)
	assert.Equal(t, tabCharacters, m.tab)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabInitiative, m.tab)
}

func TestFixedDieRoll(t *testing.T) {
	deps := newTestDeps(t)
	m := newModel(context.Background(), deps)

	m = press(t, m, tabKey, runes("6"))

	rec := deps.History.Entries()
	require.Len(t, rec, 1)
	assert.Equal(t, "d20", rec[0].Label)
	assert.True(t, rec[0].Total >= 1 && rec[0].Total <= 20)
	assert.Contains(t, m.View(), "d20")
}

func TestNotationRoll(t *testing.T) {
	deps := newTestDeps(t)
	m := newModel(context.Background(), deps)

	m = press(t, m, tabKey, runes("r"))
	require.Equal(t, modeNotation, m.mode)

	m = press(t, m, append(typeText("2d6 +1"), enter)...)
	assert.NotEmpty(t, m.notationErr)
	assert.Zero(t, deps.History.Len())

	m = press(t, m, esc, runes("r"))
	m = press(t, m, append(typeText("2d6+1"), enter)...)
	assert.Empty(t, m.notationErr)
	rec := deps.History.Entries()
	require.Len(t, rec, 1)
	assert.Equal(t, "2d6+1", rec[0].Label)
	assert.Contains(t, rec[0].Detail, "Rolls: [")
}

func TestAddInitiativeForm(t *testing.T) {
	deps := newTestDeps(t)
	m := newModel(context.Background(), deps)

	m = press(t, m, tabKey, tabKey, runes("a"))
	require.Equal(t, modeInitForm, m.mode)

	msgs := append(typeText("Orc"), tabKey)
	msgs = append(msgs, typeText("12")...)
	m = press(t, m, append(msgs, enter)...)

	assert.Equal(t, modeInitForm, m.mode, "form stays open for the next combatant")
	entries := deps.Initiative.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, model.InitiativeEntry{ID: entries[0].ID, Name: "Orc", Value: 12}, entries[0])

	m = press(t, m, append(typeText("Elf"), tabKey, runes("x"), enter)...)
	assert.NotEmpty(t, m.initForm.err)
	assert.Len(t, deps.Initiative.Entries(), 1)
}

func TestClearInitiativeConfirm(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	_, err := deps.Initiative.Add(ctx, "Orc", "12")
	require.NoError(t, err)
	m := newModel(ctx, deps)

	m = press(t, m, tabKey, tabKey, runes("C"))
	require.Equal(t, modeConfirm, m.mode)
	m = press(t, m, runes("n"))
	assert.Equal(t, modeBrowse, m.mode)
	assert.Len(t, deps.Initiative.Entries(), 1)

	m = press(t, m, runes("C"), runes("y"))
	assert.Empty(t, deps.Initiative.Entries())
	assert.Empty(t, m.inits.Items())
}

func TestAddEditDeleteCharacter(t *testing.T) {
	deps := newTestDeps(t)
	m := newModel(context.Background(), deps)

	m = press(t, m, runes("a"))
	require.Equal(t, modeCharForm, m.mode)
	msgs := typeText("Aria")
	msgs = append(msgs, tabKey)
	msgs = append(msgs, typeText("Wizard")...)
	msgs = append(msgs, tabKey)
	msgs = append(msgs, typeText("5")...)
	msgs = append(msgs, tabKey)
	msgs = append(msgs, typeText("28")...)
	m = press(t, m, append(msgs, enter)...)

	assert.Equal(t, modeBrowse, m.mode)
	chars := deps.Roster.List()
	require.Len(t, chars, 1)
	assert.Equal(t, "Aria", chars[0].Name)
	assert.Equal(t, 28, chars[0].CurrentHP, "blank current hp starts at max")

	// edit: jump to current hp and replace it
	m = press(t, m, runes("e"), tabKey, tabKey, tabKey, tabKey)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	m = press(t, m, append(typeText("9"), enter)...)
	c, ok := deps.Roster.Get(chars[0].ID)
	require.True(t, ok)
	assert.Equal(t, 9, c.CurrentHP)
	assert.Equal(t, "Wizard", c.Class)

	m = press(t, m, runes("d"), runes("n"))
	assert.Len(t, deps.Roster.List(), 1)
	m = press(t, m, runes("d"), runes("y"))
	assert.Empty(t, deps.Roster.List())
	assert.Empty(t, m.chars.Items())
}

func TestFormFields(t *testing.T) {
	f, err := formFields([]string{"Aria", "", "3", "", "-2", "15"})
	require.NoError(t, err)
	assert.Equal(t, "Aria", *f.Name)
	assert.Nil(t, f.Class)
	assert.Equal(t, 3, *f.Level)
	assert.Nil(t, f.MaxHP)
	assert.Equal(t, -2, *f.CurrentHP)
	assert.Equal(t, 15, *f.AC)

	_, err = formFields([]string{"Aria", "", "three", "", "", ""})
	assert.ErrorContains(t, err, "Level")
}

func TestFocusChangesReturnBlinkCommand(t *testing.T) {
	deps := newTestDeps(t)
	m := newModel(context.Background(), deps)

	m = press(t, m, tabKey)
	next, cmd := m.Update(runes("r"))
	assert.NotNil(t, cmd, "notation entry starts the cursor")
	assert.Equal(t, modeNotation, next.(modelTUI).mode)

	m = press(t, m, tabKey, runes("a"))
	require.Equal(t, modeInitForm, m.mode)
	_, cmd = m.Update(tabKey)
	assert.NotNil(t, cmd, "moving to the next field focuses it")

	m = press(t, m, esc, tabKey, runes("a"))
	require.Equal(t, tabCharacters, m.tab)
	require.Equal(t, modeCharForm, m.mode)
	_, cmd = m.Update(tabKey)
	assert.NotNil(t, cmd)
}
