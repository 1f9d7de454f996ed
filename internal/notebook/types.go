package notebook

import (
	"fmt"
	"time"

	"nbnav/internal/domain"
)

// NavigationState records which cell is selected and which holds the text cursor.
// The two are set independently: a selected but unfocused cell is in command mode.
type NavigationState struct {
	Selected domain.CellRef
	Focused  domain.CellRef
}

func (s NavigationState) String() string {
	return fmt.Sprintf("{selected: %s, focused: %s}", s.Selected, s.Focused)
}

// KeyCode is the subset of keys the navigation logic reacts to
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyArrowUp
	KeyArrowDown
	KeyEscape
	KeyEnter
)

func (k KeyCode) String() string {
	switch k {
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	default:
		return "Other"
	}
}

// EditorInfo describes the active text editor a key event came from
type EditorInfo struct {
	IsFirstLine bool
	IsLastLine  bool
	// Contents is nil when the editor did not report its buffer
	Contents *string
}

// KeyEvent is a key press delivered to a cell. Editor is nil in command mode.
type KeyEvent struct {
	Code   KeyCode
	Shift  bool
	Editor *EditorInfo
	// ShouldClear resets the edit cell's buffer; only honoured for the edit cell
	ShouldClear func()
}

// Directive is an effect for the UI to carry out
type Directive interface {
	isDirective()
}

// FocusCell moves input focus to a cell. EditMode puts the cursor in its editor;
// without it the editor is blurred and the cell stays in command mode.
type FocusCell struct {
	Cell     domain.CellRef
	EditMode bool
	Delay    time.Duration
}

// Scroll brings a cell into view
type Scroll struct {
	Cell domain.CellRef
}

// Activate focuses the notebook panel and then the edit cell
type Activate struct {
	Delay time.Duration
}

func (FocusCell) isDirective() {}
func (Scroll) isDirective()    {}
func (Activate) isDirective()  {}

// Transition is the outcome of handling one event
type Transition struct {
	State      NavigationState
	Directives []Directive
	// StopPropagation means the editor must not see the key
	StopPropagation bool
	// PreventDefault means the key's default action (inserting a newline) is suppressed
	PreventDefault bool
}

// unchanged is the transition for an ignored event
func unchanged(state NavigationState) Transition {
	return Transition{State: state}
}
