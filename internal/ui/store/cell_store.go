package store

import (
	"nbnav/internal/domain"
	"nbnav/internal/notebook"
	"nbnav/internal/ui/state"
)

// CellStore provides read access to the notebook document
type CellStore interface {
	notebook.Registry

	// Cell queries
	GetCell(id domain.CellID) (*domain.CellViewModel, bool)
	GetCells() []*domain.CellViewModel
	GetEditCell() *domain.CellViewModel
	CellCount() int

	// Navigation queries
	GetSelected() domain.CellRef
	GetFocused() domain.CellRef
	IsSelected(ref domain.CellRef) bool
	IsFocused(ref domain.CellRef) bool

	// Execution queries
	IsRunning(id domain.CellID) bool
	GetRunningCount() int

	// UI state queries
	GetStatusMessage() string
}

// StateCellStore implements CellStore using AppState. It also satisfies
// notebook.Document so the navigation controller writes back into AppState.
type StateCellStore struct {
	state *state.AppState
}

// NewStateCellStore creates a new cell store backed by AppState
func NewStateCellStore(appState *state.AppState) *StateCellStore {
	return &StateCellStore{
		state: appState,
	}
}

// Registry operations
func (s *StateCellStore) NavigableCells() []domain.Cell {
	return notebook.NavigableFrom(s.state.Cells)
}

func (s *StateCellStore) ResolveCellViewModel(ref domain.CellRef) (*domain.CellViewModel, bool) {
	return notebook.ResolveFrom(s.state.Cells, s.state.EditCell, ref)
}

// Document operations
func (s *StateCellStore) Navigation() notebook.NavigationState {
	return s.state.Navigation()
}

func (s *StateCellStore) SetNavigation(nav notebook.NavigationState) {
	s.state.SetNavigation(nav)
}

// Cell operations
func (s *StateCellStore) GetCell(id domain.CellID) (*domain.CellViewModel, bool) {
	return s.state.GetCell(id)
}

func (s *StateCellStore) GetCells() []*domain.CellViewModel {
	return s.state.Cells
}

func (s *StateCellStore) GetEditCell() *domain.CellViewModel {
	return s.state.EditCell
}

func (s *StateCellStore) CellCount() int {
	return len(s.state.Cells)
}

// Navigation queries
func (s *StateCellStore) GetSelected() domain.CellRef {
	return s.state.Nav.Selected
}

func (s *StateCellStore) GetFocused() domain.CellRef {
	return s.state.Nav.Focused
}

func (s *StateCellStore) IsSelected(ref domain.CellRef) bool {
	return !ref.IsZero() && s.state.Nav.Selected == ref
}

func (s *StateCellStore) IsFocused(ref domain.CellRef) bool {
	return !ref.IsZero() && s.state.Nav.Focused == ref
}

// Execution queries
func (s *StateCellStore) IsRunning(id domain.CellID) bool {
	return s.state.IsRunning(id)
}

func (s *StateCellStore) GetRunningCount() int {
	return len(s.state.RunningCells)
}

// UI state queries
func (s *StateCellStore) GetStatusMessage() string {
	return s.state.StatusMessage
}

var (
	_ CellStore         = (*StateCellStore)(nil)
	_ notebook.Document = (*StateCellStore)(nil)
)
