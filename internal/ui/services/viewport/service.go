package viewport

import "nbnav/internal/domain"

// chromeLines is the space reserved for padding, title, status bar and help line
const chromeLines = 5

// Service keeps the cell list scrolled so the selected cell is visible
type Service struct {
	state *State
	spans []Span
}

// NewService creates a new viewport service
func NewService() *Service {
	return &Service{
		state: &State{
			Offset: 0,
			Height: 20, // Default, will be updated
		},
	}
}

// GetOffset returns the first visible line
func (s *Service) GetOffset() int {
	return s.state.Offset
}

// GetHeight returns the number of visible lines
func (s *Service) GetHeight() int {
	return s.state.Height
}

// SetWindowHeight updates the height from the terminal size
func (s *Service) SetWindowHeight(height int) {
	// Reserve space for header, status bar, help
	effectiveHeight := height - chromeLines
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	s.state.Height = effectiveHeight
	s.clamp()
}

// SetLayout records where each cell was rendered
func (s *Service) SetLayout(spans []Span, total int) {
	s.spans = spans
	s.state.Total = total
	s.clamp()
}

// ScrollTo brings the cell into view. A cell taller than the viewport is
// aligned to its first line. It reports whether the offset changed.
func (s *Service) ScrollTo(ref domain.CellRef) bool {
	span, ok := s.spanOf(ref)
	if !ok {
		return false
	}
	old := s.state.Offset
	switch {
	case span.Start < s.state.Offset:
		s.state.Offset = span.Start
	case span.End > s.state.Offset+s.state.Height:
		s.state.Offset = span.End - s.state.Height
		if s.state.Offset > span.Start {
			s.state.Offset = span.Start
		}
	}
	s.clamp()
	return old != s.state.Offset
}

// ScrollBy moves the viewport by n lines
func (s *Service) ScrollBy(n int) {
	s.state.Offset += n
	s.clamp()
}

// CellAt returns the cell drawn at a row of the viewport
func (s *Service) CellAt(row int) (domain.CellRef, bool) {
	if row < 0 || row >= s.state.Height {
		return domain.CellRef{}, false
	}
	line := s.state.Offset + row
	for _, span := range s.spans {
		if span.Contains(line) {
			return span.Ref, true
		}
	}
	return domain.CellRef{}, false
}

// Helper methods
func (s *Service) spanOf(ref domain.CellRef) (Span, bool) {
	for _, span := range s.spans {
		if span.Ref == ref {
			return span, true
		}
	}
	return Span{}, false
}

func (s *Service) clamp() {
	maxOffset := s.state.Total - s.state.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.state.Offset > maxOffset {
		s.state.Offset = maxOffset
	}
	if s.state.Offset < 0 {
		s.state.Offset = 0
	}
}
