package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Clear     key.Binding
	Notation  key.Binding
	FixedDie  key.Binding
	Quit      key.Binding
	Yes       key.Binding
	No        key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Clear:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Notation:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "roll notation")),
		FixedDie:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "d4…d100")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Yes:       key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:        key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	}
}
