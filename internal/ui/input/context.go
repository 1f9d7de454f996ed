package input

import (
	"nbnav/internal/domain"
	"nbnav/internal/notebook"
	"nbnav/internal/ui/store"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Store store.CellStore
	// EditorFn reports the active cell editor; nil or a nil result means none
	EditorFn func() *notebook.EditorInfo
	// ClearFn resets the edit cell buffer
	ClearFn func()
}

// Source returns the cell that receives key events: the focused cell, else
// the selected one, else the edit cell.
func (c *ModelContext) Source() domain.CellRef {
	return SourceCell(notebook.NavigationState{
		Selected: c.Store.GetSelected(),
		Focused:  c.Store.GetFocused(),
	})
}

// SourceCell picks the cell key events are delivered to for a navigation state
func SourceCell(nav notebook.NavigationState) domain.CellRef {
	switch {
	case !nav.Focused.IsZero():
		return nav.Focused
	case !nav.Selected.IsZero():
		return nav.Selected
	default:
		return domain.EditCell
	}
}

func (c *ModelContext) Editor() *notebook.EditorInfo {
	if c.EditorFn == nil {
		return nil
	}
	return c.EditorFn()
}

func (c *ModelContext) ClearEditCell() func() {
	return c.ClearFn
}

// CurrentCell returns the selected content cell
func (c *ModelContext) CurrentCell() (*domain.CellViewModel, bool) {
	selected := c.Store.GetSelected()
	if selected.IsZero() || selected.IsEdit() {
		return nil, false
	}
	return c.Store.GetCell(selected.ID())
}

func (c *ModelContext) CellCount() int {
	return c.Store.CellCount()
}
