package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"nbnav/internal/clipboard"
	"nbnav/internal/domain"
	"nbnav/internal/eventbus"
	"nbnav/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
	// Clipboard writes text to the system clipboard
	Clipboard func(string) error
}

func (c *CommandContext) publish(event eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(event)
	}
}

// newCellID returns a fresh cell id
func newCellID() domain.CellID {
	return domain.CellID(uuid.NewString())
}

// SubmitCommand runs submitted editor content. Content from the edit cell
// becomes a new code cell at the end of the document; content from an
// existing cell replaces its source and runs it again.
type SubmitCommand struct {
	ctx     *CommandContext
	content string
	vm      *domain.CellViewModel
}

// NewSubmitCommand creates a new submit command
func NewSubmitCommand(ctx *CommandContext, content string, vm *domain.CellViewModel) *SubmitCommand {
	return &SubmitCommand{
		ctx:     ctx,
		content: content,
		vm:      vm,
	}
}

// Execute performs the submission
func (c *SubmitCommand) Execute() tea.Cmd {
	if c.vm == nil {
		return nil
	}
	st := c.ctx.State

	if c.vm.IsEditCell() {
		cell := domain.Cell{
			ID:             newCellID(),
			Type:           domain.CellTypeCode,
			Source:         c.content,
			ExecutionCount: st.NextExecutionCount(),
		}
		if _, ok := st.AppendCell(cell); !ok {
			return nil
		}
		st.MarkRunning(cell.ID)
		c.ctx.publish(eventbus.CellAddedEvent{Cell: cell, Index: len(st.Cells) - 1})
		c.ctx.publish(eventbus.InputSubmittedEvent{
			CellID:  cell.ID,
			Source:  cell.Source,
			Count:   cell.ExecutionCount,
			Created: true,
		})
		st.StatusMessage = fmt.Sprintf("Running [%d]", cell.ExecutionCount)
		return nil
	}

	id := c.vm.Cell.ID
	if !st.SetCellSource(domain.Ref(id), c.content) {
		return nil
	}

	// Markdown is rendered, not executed
	if c.vm.Cell.Type == domain.CellTypeMarkdown {
		c.vm.Cell.State = domain.CellFinished
		c.vm.Cell.Outputs = nil
		return nil
	}

	c.vm.Cell.ExecutionCount = st.NextExecutionCount()
	st.MarkRunning(id)
	c.ctx.publish(eventbus.InputSubmittedEvent{
		CellID: id,
		Source: c.content,
		Count:  c.vm.Cell.ExecutionCount,
	})
	st.StatusMessage = fmt.Sprintf("Running [%d]", c.vm.Cell.ExecutionCount)
	return nil
}

// InsertCellCommand inserts an empty code cell next to the selected cell
type InsertCellCommand struct {
	ctx   *CommandContext
	below bool
	id    domain.CellID
}

// NewInsertCellCommand creates a new insert command
func NewInsertCellCommand(ctx *CommandContext, below bool) *InsertCellCommand {
	return &InsertCellCommand{
		ctx:   ctx,
		below: below,
	}
}

// Execute inserts the cell and selects it
func (c *InsertCellCommand) Execute() tea.Cmd {
	st := c.ctx.State

	index := len(st.Cells)
	if sel := st.Nav.Selected; !sel.IsZero() && !sel.IsEdit() {
		if i := st.IndexOfCell(sel.ID()); i >= 0 {
			index = i
			if c.below {
				index++
			}
		}
	}

	cell := domain.Cell{ID: newCellID(), Type: domain.CellTypeCode}
	if _, ok := st.InsertCell(cell, index); !ok {
		return nil
	}
	c.id = cell.ID
	st.Nav.Selected = domain.Ref(cell.ID)
	c.ctx.publish(eventbus.CellAddedEvent{Cell: cell, Index: index})
	return nil
}

// Inserted returns the id of the inserted cell, empty before Execute
func (c *InsertCellCommand) Inserted() domain.CellID {
	return c.id
}

// DeleteCellCommand removes a cell from the document
type DeleteCellCommand struct {
	ctx *CommandContext
	id  domain.CellID
}

// NewDeleteCellCommand creates a new delete command
func NewDeleteCellCommand(ctx *CommandContext, id domain.CellID) *DeleteCellCommand {
	return &DeleteCellCommand{
		ctx: ctx,
		id:  id,
	}
}

// Execute removes the cell. The selection moves to the cell that took its
// place, or to the edit cell when it was the last one.
func (c *DeleteCellCommand) Execute() tea.Cmd {
	st := c.ctx.State
	i := st.IndexOfCell(c.id)
	if i < 0 {
		st.StatusMessage = "Cell not found"
		return nil
	}
	wasSelected := st.Nav.Selected == domain.Ref(c.id)

	st.RemoveCell(c.id)
	if wasSelected {
		switch {
		case i < len(st.Cells):
			st.Nav.Selected = domain.Ref(st.Cells[i].Cell.ID)
		default:
			st.Nav.Selected = domain.EditCell
		}
	}
	st.StatusMessage = "Cell deleted"
	c.ctx.publish(eventbus.CellRemovedEvent{ID: c.id})
	return nil
}

// MoveCellCommand moves a cell one position up or down. The selection
// follows the cell.
type MoveCellCommand struct {
	ctx *CommandContext
	id  domain.CellID
	up  bool
}

// NewMoveCellCommand creates a new move command
func NewMoveCellCommand(ctx *CommandContext, id domain.CellID, up bool) *MoveCellCommand {
	return &MoveCellCommand{
		ctx: ctx,
		id:  id,
		up:  up,
	}
}

// Execute moves the cell
func (c *MoveCellCommand) Execute() tea.Cmd {
	st := c.ctx.State
	delta := 1
	if c.up {
		delta = -1
	}
	from, to, ok := st.MoveCell(c.id, delta)
	if !ok {
		if from < 0 {
			st.StatusMessage = "Cell not found"
		}
		return nil
	}
	st.Nav.Selected = domain.Ref(c.id)
	st.StatusMessage = fmt.Sprintf("Moved cell to position %d", to+1)
	c.ctx.publish(eventbus.CellMovedEvent{ID: c.id, From: from, To: to})
	return nil
}

// ClearAllCommand removes every content cell
type ClearAllCommand struct {
	ctx *CommandContext
}

// NewClearAllCommand creates a new clear command
func NewClearAllCommand(ctx *CommandContext) *ClearAllCommand {
	return &ClearAllCommand{ctx: ctx}
}

// Execute clears the document
func (c *ClearAllCommand) Execute() tea.Cmd {
	n := c.ctx.State.ClearCells()
	c.ctx.State.StatusMessage = fmt.Sprintf("Cleared %d cells", n)
	c.ctx.publish(eventbus.CellsClearedEvent{Count: n})
	return nil
}

// SetCellTypeCommand switches a cell between code and markdown
type SetCellTypeCommand struct {
	ctx      *CommandContext
	id       domain.CellID
	cellType domain.CellType
}

// NewSetCellTypeCommand creates a new set type command
func NewSetCellTypeCommand(ctx *CommandContext, id domain.CellID, cellType domain.CellType) *SetCellTypeCommand {
	return &SetCellTypeCommand{
		ctx:      ctx,
		id:       id,
		cellType: cellType,
	}
}

// Execute changes the cell type
func (c *SetCellTypeCommand) Execute() tea.Cmd {
	if c.ctx.State.SetCellType(c.id, c.cellType) {
		c.ctx.State.StatusMessage = fmt.Sprintf("Cell is now %s", c.cellType)
	}
	return nil
}

// CopyCellCommand copies a cell's source to the clipboard
type CopyCellCommand struct {
	ctx *CommandContext
	id  domain.CellID
}

// NewCopyCellCommand creates a new copy command
func NewCopyCellCommand(ctx *CommandContext, id domain.CellID) *CopyCellCommand {
	return &CopyCellCommand{
		ctx: ctx,
		id:  id,
	}
}

// Execute writes the source to the clipboard
func (c *CopyCellCommand) Execute() tea.Cmd {
	vm, ok := c.ctx.State.GetCell(c.id)
	if !ok {
		return nil
	}
	write := c.ctx.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}
	if err := write(vm.Cell.Source); err != nil {
		c.ctx.State.StatusMessage = fmt.Sprintf("Copy failed: %v", err)
		c.ctx.publish(eventbus.ErrorEvent{Message: "copy to clipboard failed", Err: err})
		return nil
	}
	c.ctx.State.StatusMessage = "Copied cell source"
	return nil
}
