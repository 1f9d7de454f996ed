package notebook

import "nbnav/internal/domain"

// Navigate computes the transition for a key pressed in the source cell.
// It is pure: state and reg are only read. Shift+Enter is not handled here,
// see Submitter.
func Navigate(state NavigationState, source domain.CellRef, ev KeyEvent, reg Registry) Transition {
	switch ev.Code {
	case KeyArrowUp:
		if !arrowTriggers(state, source, ev, func(e *EditorInfo) bool { return e.IsFirstLine }) {
			return unchanged(state)
		}
		return arrowUp(state, source, reg)

	case KeyArrowDown:
		if !arrowTriggers(state, source, ev, func(e *EditorInfo) bool { return e.IsLastLine }) {
			return unchanged(state)
		}
		return arrowDown(state, source, reg)

	case KeyEscape:
		return escape(state)

	case KeyEnter:
		if ev.Shift {
			return unchanged(state)
		}
		return enterCell(state, source, ev, reg)
	}
	return unchanged(state)
}

// arrowTriggers is true when nothing is focused, or the source cell is focused
// with its cursor on the boundary line.
func arrowTriggers(state NavigationState, source domain.CellRef, ev KeyEvent, atBoundary func(*EditorInfo) bool) bool {
	if state.Focused.IsZero() {
		return true
	}
	return state.Focused == source && ev.Editor != nil && atBoundary(ev.Editor)
}

func arrowUp(state NavigationState, source domain.CellRef, reg Registry) Transition {
	cells := reg.NavigableCells()
	index := IndexOf(reg, source) - 1
	if source.IsEdit() {
		index = len(cells) - 1
	}
	if index < 0 {
		return unchanged(state)
	}
	return moveTo(state, domain.Ref(cells[index].ID))
}

func arrowDown(state NavigationState, source domain.CellRef, reg Registry) Transition {
	cells := reg.NavigableCells()
	index := IndexOf(reg, source)
	if index < 0 {
		return unchanged(state)
	}

	target := domain.EditCell
	if index+1 < len(cells) {
		target = domain.Ref(cells[index+1].ID)
	}
	return moveTo(state, target)
}

// moveTo selects target and carries edit focus along if a cell had it
func moveTo(state NavigationState, target domain.CellRef) Transition {
	wasFocused := !state.Focused.IsZero()
	next := NavigationState{Selected: target}
	if wasFocused {
		next.Focused = target
	}
	return Transition{
		State:           next,
		Directives:      []Directive{FocusCell{Cell: target, EditMode: wasFocused}},
		StopPropagation: true,
	}
}

// escape asks the UI to drop the focused cell back to command mode. The
// focused reference is left alone; it clears when the editor reports focus loss.
func escape(state NavigationState) Transition {
	if state.Focused.IsZero() {
		return unchanged(state)
	}
	return Transition{
		State:           state,
		Directives:      []Directive{FocusCell{Cell: state.Focused, EditMode: false}},
		StopPropagation: true,
	}
}

func enterCell(state NavigationState, source domain.CellRef, ev KeyEvent, reg Registry) Transition {
	if !state.Focused.IsZero() || ev.Editor != nil || source.IsZero() || state.Selected != source {
		return unchanged(state)
	}
	if _, ok := reg.ResolveCellViewModel(source); !ok {
		return unchanged(state)
	}
	return Transition{
		State:           state,
		Directives:      []Directive{FocusCell{Cell: source, EditMode: true}},
		StopPropagation: true,
	}
}
