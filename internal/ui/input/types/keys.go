package types

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/notebook"
)

// KeyMap holds the key bindings of the notebook
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Enter       key.Binding
	Escape      key.Binding
	Submit      key.Binding
	InsertAbove key.Binding
	InsertBelow key.Binding
	Delete      key.Binding
	MoveUp      key.Binding
	MoveDown    key.Binding
	Copy        key.Binding
	ClearAll    key.Binding
	Markdown    key.Binding
	Code        key.Binding
	Output      key.Binding
	Help        key.Binding
	HelpPager   key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the bindings; extra submit keys come from configuration
func DefaultKeyMap(submit ...string) KeyMap {
	submitKeys := append([]string{"shift+enter"}, submit...)
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous cell")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next cell")),
		Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit cell")),
		Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "command mode")),
		Submit:      key.NewBinding(key.WithKeys(submitKeys...), key.WithHelp(submitKeys[len(submitKeys)-1], "run cell")),
		InsertAbove: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "insert above")),
		InsertBelow: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "insert below")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete cell")),
		MoveUp:      key.NewBinding(key.WithKeys("K", "ctrl+up"), key.WithHelp("K", "move cell up")),
		MoveDown:    key.NewBinding(key.WithKeys("J", "ctrl+down"), key.WithHelp("J", "move cell down")),
		Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy source")),
		ClearAll:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear all")),
		Markdown:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "to markdown")),
		Code:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "to code")),
		Output:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "view output")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		HelpPager:   key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help in pager")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Submit, k.Escape, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Escape, k.Submit},
		{k.InsertAbove, k.InsertBelow, k.MoveUp, k.MoveDown, k.Delete, k.ClearAll},
		{k.Copy, k.Markdown, k.Code, k.Output},
		{k.Help, k.HelpPager, k.Quit},
	}
}

// Translate maps a terminal key to the navigation key it stands for.
// The j/k aliases only count in command mode, where editor is nil.
func (k KeyMap) Translate(msg tea.KeyMsg, editor *notebook.EditorInfo) notebook.KeyEvent {
	ev := notebook.KeyEvent{Code: notebook.KeyOther, Editor: editor}

	switch {
	case key.Matches(msg, k.Submit):
		ev.Code = notebook.KeyEnter
		ev.Shift = true
	case msg.Type == tea.KeyUp:
		ev.Code = notebook.KeyArrowUp
	case msg.Type == tea.KeyDown:
		ev.Code = notebook.KeyArrowDown
	case msg.Type == tea.KeyEsc:
		ev.Code = notebook.KeyEscape
	case msg.Type == tea.KeyEnter && !msg.Alt:
		ev.Code = notebook.KeyEnter
	case editor == nil && key.Matches(msg, k.Up):
		ev.Code = notebook.KeyArrowUp
	case editor == nil && key.Matches(msg, k.Down):
		ev.Code = notebook.KeyArrowDown
	}
	return ev
}
