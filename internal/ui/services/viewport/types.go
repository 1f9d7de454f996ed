package viewport

import "nbnav/internal/domain"

// State holds the scroll position of the cell list
type State struct {
	Offset int // first visible line
	Height int // number of visible lines
	Total  int // rendered lines of the whole document
}

// Span is the line range a cell occupies in the rendered document; End is exclusive
type Span struct {
	Ref   domain.CellRef
	Start int
	End   int
}

// Contains reports whether line falls inside the span
func (s Span) Contains(line int) bool {
	return line >= s.Start && line < s.End
}
