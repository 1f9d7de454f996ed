package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/domain"
	"nbnav/internal/notebook"
)

// Cell key actions

// CellKeyAction delivers a key to the source cell's navigation controller.
// Msg is handed to the cell editor if the controller lets the key through.
type CellKeyAction struct {
	Cell  domain.CellRef
	Event notebook.KeyEvent
	Msg   tea.KeyMsg
}

func (a CellKeyAction) Type() string { return "cell_key" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// ConfirmRequest is the data passed to ModeConfirm
type ConfirmRequest struct {
	Prompt string
	Action Action
}

// Document actions
type InsertCellAction struct {
	Below bool
}

func (a InsertCellAction) Type() string { return "insert_cell" }

type DeleteCellAction struct {
	Cell domain.CellID
}

func (a DeleteCellAction) Type() string { return "delete_cell" }

type MoveCellAction struct {
	Cell domain.CellID
	Up   bool
}

func (a MoveCellAction) Type() string { return "move_cell" }

type CopyCellAction struct {
	Cell domain.CellID
}

func (a CopyCellAction) Type() string { return "copy_cell" }

type ClearAllAction struct{}

func (a ClearAllAction) Type() string { return "clear_all" }

type SetCellTypeAction struct {
	Cell     domain.CellID
	CellType domain.CellType
}

func (a SetCellTypeAction) Type() string { return "set_cell_type" }

// View actions
type OpenOutputAction struct {
	Cell domain.CellID
}

func (a OpenOutputAction) Type() string { return "open_output" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ShowHelpPagerAction struct{}

func (a ShowHelpPagerAction) Type() string { return "show_help_pager" }

type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
