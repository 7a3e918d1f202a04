package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/pwiecz/hex_skirmish/lib"
)

type keyMap struct {
	CursorUp    key.Binding
	CursorDown  key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	MoveTo      key.Binding
	StepUp      key.Binding
	StepDown    key.Binding
	StepUpLeft  key.Binding
	StepUpRight key.Binding
	StepDnLeft  key.Binding
	StepDnRight key.Binding
	ToggleMode  key.Binding
	Fire        key.Binding
	Cancel      key.Binding
	Faster      key.Binding
	Slower      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	CursorUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "cursor up")),
	CursorDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "cursor down")),
	CursorLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "cursor left")),
	CursorRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "cursor right")),
	MoveTo:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "move to cursor")),
	StepUp:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "step up")),
	StepDown:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "step down")),
	StepUpLeft:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "step up-left")),
	StepUpRight: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "step up-right")),
	StepDnLeft:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "step down-left")),
	StepDnRight: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "step down-right")),
	ToggleMode:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "map/combat")),
	Fire:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
	Cancel:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "stop")),
	Faster:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
	Slower:      key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "slower")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:        key.NewBinding(key.WithKeys("ctrl+c", "x"), key.WithHelp("x", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveTo, k.ToggleMode, k.Fire, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CursorUp, k.CursorDown, k.CursorLeft, k.CursorRight, k.MoveTo},
		{k.StepUp, k.StepDown, k.StepUpLeft, k.StepUpRight, k.StepDnLeft, k.StepDnRight},
		{k.ToggleMode, k.Fire, k.Cancel, k.Faster, k.Slower, k.Help, k.Quit},
	}
}

// sessionKeys pairs bindings with the session commands they issue.
var sessionKeys = []struct {
	binding *key.Binding
	command lib.Key
}{
	{&keys.StepUp, lib.KeyStepUp},
	{&keys.StepDown, lib.KeyStepDown},
	{&keys.StepUpLeft, lib.KeyStepUpLeft},
	{&keys.StepUpRight, lib.KeyStepUpRight},
	{&keys.StepDnLeft, lib.KeyStepDownLeft},
	{&keys.StepDnRight, lib.KeyStepDownRight},
	{&keys.ToggleMode, lib.KeyToggleMode},
	{&keys.Fire, lib.KeyFire},
	{&keys.Cancel, lib.KeyCancel},
	{&keys.Faster, lib.KeyFaster},
	{&keys.Slower, lib.KeySlower},
}
