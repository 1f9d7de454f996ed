package domain

import "time"

// CellID identifies a cell in the notebook document
type CellID string

// EditCellID is the reserved id of the trailing input cell.
// No ordinary cell may use it.
const EditCellID CellID = "__edit__"

// CellType describes what a cell holds
type CellType string

const (
	CellTypeCode     CellType = "code"
	CellTypeMarkdown CellType = "markdown"
	// CellTypeMessages cells carry system output and are skipped by keyboard navigation
	CellTypeMessages CellType = "messages"
)

// CellState is the execution state of a cell
type CellState int

const (
	CellIdle CellState = iota
	CellQueued
	CellRunning
	CellFinished
	CellError
)

func (s CellState) String() string {
	switch s {
	case CellQueued:
		return "queued"
	case CellRunning:
		return "running"
	case CellFinished:
		return "finished"
	case CellError:
		return "error"
	default:
		return "idle"
	}
}

// Output is one chunk of execution output attached to a cell
type Output struct {
	Text    string
	IsError bool
}

// Cell is a unit of the notebook document
type Cell struct {
	ID             CellID
	Type           CellType
	Source         string
	Outputs        []Output
	ExecutionCount int
	State          CellState
	Duration       time.Duration
}

// Navigable reports whether keyboard navigation may land on the cell
func (c Cell) Navigable() bool {
	return c.Type != CellTypeMessages
}

// CellViewModel is the per-cell presentation record
type CellViewModel struct {
	Cell     Cell
	Editable bool
}

// NewCellViewModel wraps a document cell
func NewCellViewModel(cell Cell) *CellViewModel {
	return &CellViewModel{
		Cell:     cell,
		Editable: cell.Type != CellTypeMessages,
	}
}

// NewEditCellViewModel creates the singleton view model for the trailing input cell
func NewEditCellViewModel() *CellViewModel {
	return &CellViewModel{
		Cell: Cell{
			ID:   EditCellID,
			Type: CellTypeCode,
		},
		Editable: true,
	}
}

// IsEditCell reports whether the view model belongs to the trailing input cell
func (vm *CellViewModel) IsEditCell() bool {
	return vm != nil && vm.Cell.ID == EditCellID
}
