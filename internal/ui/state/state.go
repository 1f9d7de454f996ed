package state

import (
	"nbnav/internal/domain"
	"nbnav/internal/notebook"
)

// AppState contains all the application state
type AppState struct {
	// Document data
	Cells    []*domain.CellViewModel // ordered content cells
	EditCell *domain.CellViewModel   // trailing input cell, never removed

	// Navigation state
	Nav notebook.NavigationState

	// Execution bookkeeping
	ExecutionCount int                    // last execution count handed out
	RunningCells   map[domain.CellID]bool // cells queued or executing
	Spinning       bool                   // a spinner tick chain is scheduled

	// UI state
	PanelFocused  bool // whether the notebook panel has been activated
	ShowHelp      bool
	StatusMessage string // status bar message
	Scroll        int    // first visible line of the cell list
	Height        int    // available height for the cell list
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Cells:        make([]*domain.CellViewModel, 0),
		EditCell:     domain.NewEditCellViewModel(),
		RunningCells: make(map[domain.CellID]bool),
		Height:       20,
	}
}

// Navigation operations

// Navigation returns the current selection and focus
func (s *AppState) Navigation() notebook.NavigationState {
	return s.Nav
}

// SetNavigation replaces the selection and focus
func (s *AppState) SetNavigation(nav notebook.NavigationState) {
	s.Nav = nav
}

// Cell operations

// IndexOfCell returns the position of a cell in the document, or -1
func (s *AppState) IndexOfCell(id domain.CellID) int {
	for i, vm := range s.Cells {
		if vm.Cell.ID == id {
			return i
		}
	}
	return -1
}

// GetCell returns the view model of a content cell
func (s *AppState) GetCell(id domain.CellID) (*domain.CellViewModel, bool) {
	if i := s.IndexOfCell(id); i >= 0 {
		return s.Cells[i], true
	}
	return nil, false
}

// InsertCell inserts a cell at index, clamped to the document bounds.
// A duplicate id or the reserved edit cell id is rejected.
func (s *AppState) InsertCell(cell domain.Cell, index int) (*domain.CellViewModel, bool) {
	if cell.ID == "" || cell.ID == domain.EditCellID || s.IndexOfCell(cell.ID) >= 0 {
		return nil, false
	}
	if index < 0 || index > len(s.Cells) {
		index = len(s.Cells)
	}
	vm := domain.NewCellViewModel(cell)
	s.Cells = append(s.Cells, nil)
	copy(s.Cells[index+1:], s.Cells[index:])
	s.Cells[index] = vm
	return vm, true
}

// AppendCell adds a cell at the end of the document, just above the edit cell
func (s *AppState) AppendCell(cell domain.Cell) (*domain.CellViewModel, bool) {
	return s.InsertCell(cell, len(s.Cells))
}

// RemoveCell deletes a cell. References to it in the navigation state are dropped.
func (s *AppState) RemoveCell(id domain.CellID) bool {
	i := s.IndexOfCell(id)
	if i < 0 {
		return false
	}
	s.Cells = append(s.Cells[:i], s.Cells[i+1:]...)
	delete(s.RunningCells, id)

	ref := domain.Ref(id)
	if s.Nav.Selected == ref {
		s.Nav.Selected = domain.CellRef{}
	}
	if s.Nav.Focused == ref {
		s.Nav.Focused = domain.CellRef{}
	}
	return true
}

// MoveCell shifts a cell by delta positions, clamped to the document bounds.
// It returns the old and new index; ok is false when the cell is unknown or
// cannot move further.
func (s *AppState) MoveCell(id domain.CellID, delta int) (from, to int, ok bool) {
	from = s.IndexOfCell(id)
	if from < 0 {
		return -1, -1, false
	}
	to = from + delta
	if to < 0 {
		to = 0
	}
	if to > len(s.Cells)-1 {
		to = len(s.Cells) - 1
	}
	if to == from {
		return from, to, false
	}
	vm := s.Cells[from]
	if to < from {
		copy(s.Cells[to+1:from+1], s.Cells[to:from])
	} else {
		copy(s.Cells[from:to], s.Cells[from+1:to+1])
	}
	s.Cells[to] = vm
	return from, to, true
}

// ClearCells removes every content cell. The edit cell stays.
func (s *AppState) ClearCells() int {
	n := len(s.Cells)
	s.Cells = s.Cells[:0]
	s.RunningCells = make(map[domain.CellID]bool)
	if !s.Nav.Selected.IsEdit() {
		s.Nav.Selected = domain.CellRef{}
	}
	if !s.Nav.Focused.IsEdit() {
		s.Nav.Focused = domain.CellRef{}
	}
	return n
}

// SetCellSource replaces the source of a content cell or of the edit cell
func (s *AppState) SetCellSource(ref domain.CellRef, source string) bool {
	vm, ok := notebook.ResolveFrom(s.Cells, s.EditCell, ref)
	if !ok {
		return false
	}
	vm.Cell.Source = source
	return true
}

// SetCellType changes the type of a content cell
func (s *AppState) SetCellType(id domain.CellID, t domain.CellType) bool {
	vm, ok := s.GetCell(id)
	if !ok {
		return false
	}
	vm.Cell.Type = t
	vm.Editable = t != domain.CellTypeMessages
	return true
}

// NextExecutionCount hands out the next execution count
func (s *AppState) NextExecutionCount() int {
	s.ExecutionCount++
	return s.ExecutionCount
}

// MarkRunning flags a cell as queued for execution
func (s *AppState) MarkRunning(id domain.CellID) {
	if vm, ok := s.GetCell(id); ok {
		vm.Cell.State = domain.CellQueued
		vm.Cell.Outputs = nil
		s.RunningCells[id] = true
	}
}

// IsRunning reports whether the cell is queued or executing
func (s *AppState) IsRunning(id domain.CellID) bool {
	return s.RunningCells[id]
}
