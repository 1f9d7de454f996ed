package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/domain"
	"nbnav/internal/eventbus"
	"nbnav/internal/notebook"
	"nbnav/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// SetClipboard replaces the clipboard writer
func (e *Executor) SetClipboard(write func(string) error) {
	e.ctx.Clipboard = write
}

// SubmitInput implements notebook.Sink
func (e *Executor) SubmitInput(content string, vm *domain.CellViewModel) {
	NewSubmitCommand(e.ctx, content, vm).Execute()
}

// ExecuteInsert creates and executes an insert command. It returns the new cell's id.
func (e *Executor) ExecuteInsert(below bool) (domain.CellID, tea.Cmd) {
	cmd := NewInsertCellCommand(e.ctx, below)
	teaCmd := cmd.Execute()
	return cmd.Inserted(), teaCmd
}

// ExecuteDelete creates and executes a delete command
func (e *Executor) ExecuteDelete(id domain.CellID) tea.Cmd {
	cmd := NewDeleteCellCommand(e.ctx, id)
	return cmd.Execute()
}

// ExecuteMove creates and executes a move command
func (e *Executor) ExecuteMove(id domain.CellID, up bool) tea.Cmd {
	cmd := NewMoveCellCommand(e.ctx, id, up)
	return cmd.Execute()
}

// ExecuteClearAll creates and executes a clear command
func (e *Executor) ExecuteClearAll() tea.Cmd {
	cmd := NewClearAllCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteSetCellType creates and executes a set type command
func (e *Executor) ExecuteSetCellType(id domain.CellID, cellType domain.CellType) tea.Cmd {
	cmd := NewSetCellTypeCommand(e.ctx, id, cellType)
	return cmd.Execute()
}

// ExecuteCopy creates and executes a copy command
func (e *Executor) ExecuteCopy(id domain.CellID) tea.Cmd {
	cmd := NewCopyCellCommand(e.ctx, id)
	return cmd.Execute()
}

var _ notebook.Sink = (*Executor)(nil)
