package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/domain"
	"nbnav/internal/notebook"
)

// Mode represents an input mode
type Mode int

const (
	// ModeCommand is active while no cell editor has the cursor
	ModeCommand Mode = iota
	// ModeEdit is active while a cell editor has the cursor
	ModeEdit
	// ModeConfirm asks a yes/no question before a destructive action
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "EDIT"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "COMMAND"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// Source is the cell key events are delivered to
	Source() domain.CellRef
	// Editor describes the active cell editor, nil in command mode
	Editor() *notebook.EditorInfo
	// ClearEditCell resets the edit cell buffer
	ClearEditCell() func()
	// CurrentCell returns the selected content cell, if any
	CurrentCell() (*domain.CellViewModel, bool)
	CellCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context, data interface{}) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
