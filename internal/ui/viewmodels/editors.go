package viewmodels

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/domain"
	"nbnav/internal/notebook"
)

// Editors owns the text areas used to edit cells. The edit cell keeps its own
// buffer so a draft survives moving around the notebook; content cells share
// a second one that is loaded on focus.
type Editors struct {
	edit   textarea.Model
	cell   textarea.Model
	active domain.CellRef
}

// NewEditors creates the editors
func NewEditors(height int, lineNumbers bool) *Editors {
	return &Editors{
		edit: newArea(height, lineNumbers),
		cell: newArea(height, lineNumbers),
	}
}

func newArea(height int, lineNumbers bool) textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.ShowLineNumbers = lineNumbers
	ta.SetHeight(height)
	return ta
}

// SetWidth resizes both editors
func (e *Editors) SetWidth(width int) {
	e.edit.SetWidth(width)
	e.cell.SetWidth(width)
}

// Open focuses the editor for ref, loading source into it. The edit cell's
// draft is kept unless it is empty.
func (e *Editors) Open(ref domain.CellRef, source string) tea.Cmd {
	if ref.IsZero() {
		return nil
	}
	if !e.active.IsZero() && e.active != ref {
		e.area().Blur()
	}
	e.active = ref
	area := e.area()
	if ref.IsEdit() {
		if area.Value() == "" {
			area.SetValue(source)
		}
	} else if area.Value() != source || !area.Focused() {
		area.SetValue(source)
	}
	return area.Focus()
}

// Close blurs the active editor and returns what it was editing
func (e *Editors) Close() (domain.CellRef, string, bool) {
	if e.active.IsZero() {
		return domain.CellRef{}, "", false
	}
	ref := e.active
	area := e.area()
	area.Blur()
	value := area.Value()
	e.active = domain.CellRef{}
	return ref, value, true
}

// Active returns the cell being edited, zero when none
func (e *Editors) Active() domain.CellRef {
	return e.active
}

// Value returns the text of the active editor
func (e *Editors) Value() string {
	if e.active.IsZero() {
		return ""
	}
	return e.area().Value()
}

// Info describes the active editor for key handling, nil when none is active
func (e *Editors) Info() *notebook.EditorInfo {
	if e.active.IsZero() {
		return nil
	}
	area := e.area()
	li := area.LineInfo()
	contents := area.Value()
	return &notebook.EditorInfo{
		IsFirstLine: area.Line() == 0 && li.RowOffset == 0,
		IsLastLine:  area.Line() == area.LineCount()-1 && li.RowOffset >= li.Height-1,
		Contents:    &contents,
	}
}

// ClearEditCell empties the edit cell's buffer
func (e *Editors) ClearEditCell() {
	e.edit.Reset()
}

// Update forwards a message to the active editor
func (e *Editors) Update(msg tea.Msg) tea.Cmd {
	if e.active.IsZero() {
		return nil
	}
	var cmd tea.Cmd
	if e.active.IsEdit() {
		e.edit, cmd = e.edit.Update(msg)
	} else {
		e.cell, cmd = e.cell.Update(msg)
	}
	return cmd
}

// View renders the active editor
func (e *Editors) View() string {
	if e.active.IsZero() {
		return ""
	}
	return e.area().View()
}

func (e *Editors) area() *textarea.Model {
	if e.active.IsEdit() {
		return &e.edit
	}
	return &e.cell
}
