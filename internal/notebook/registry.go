// Package notebook holds the cell navigation and submission logic of the
// notebook surface. Nothing here touches the terminal: decisions come back as
// state transitions and directives which the UI layer applies.
package notebook

import "nbnav/internal/domain"

// Registry is a read-only view over the document's cells
type Registry interface {
	// NavigableCells returns the cells keyboard navigation may land on, in document order
	NavigableCells() []domain.Cell
	// ResolveCellViewModel returns the view model of a cell or of the edit cell
	ResolveCellViewModel(ref domain.CellRef) (*domain.CellViewModel, bool)
}

// IndexOf returns the position of ref among the navigable cells, or -1.
// The edit cell is never part of that list.
func IndexOf(reg Registry, ref domain.CellRef) int {
	if ref.IsZero() || ref.IsEdit() {
		return -1
	}
	for i, c := range reg.NavigableCells() {
		if c.ID == ref.ID() {
			return i
		}
	}
	return -1
}

// snapshotRegistry answers queries over a fixed list of view models
type snapshotRegistry struct {
	cells []*domain.CellViewModel
	edit  *domain.CellViewModel
}

// NewRegistry builds a registry over the given view models and edit cell.
// A nil edit cell is replaced by a fresh one.
func NewRegistry(cells []*domain.CellViewModel, edit *domain.CellViewModel) Registry {
	if edit == nil {
		edit = domain.NewEditCellViewModel()
	}
	return &snapshotRegistry{cells: cells, edit: edit}
}

func (r *snapshotRegistry) NavigableCells() []domain.Cell {
	return NavigableFrom(r.cells)
}

func (r *snapshotRegistry) ResolveCellViewModel(ref domain.CellRef) (*domain.CellViewModel, bool) {
	return ResolveFrom(r.cells, r.edit, ref)
}

// NavigableFrom filters view models down to navigable cells
func NavigableFrom(vms []*domain.CellViewModel) []domain.Cell {
	out := make([]domain.Cell, 0, len(vms))
	for _, vm := range vms {
		if vm != nil && vm.Cell.Navigable() {
			out = append(out, vm.Cell)
		}
	}
	return out
}

// ResolveFrom looks ref up among vms, falling back to edit for the edit cell reference
func ResolveFrom(vms []*domain.CellViewModel, edit *domain.CellViewModel, ref domain.CellRef) (*domain.CellViewModel, bool) {
	switch {
	case ref.IsZero():
		return nil, false
	case ref.IsEdit():
		return edit, edit != nil
	}
	for _, vm := range vms {
		if vm != nil && vm.Cell.ID == ref.ID() {
			return vm, true
		}
	}
	return nil, false
}
