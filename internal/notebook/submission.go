package notebook

import (
	"strings"
	"time"

	"nbnav/internal/domain"
)

// DefaultRefocusDelay lets the UI insert the executed cell before focus returns
const DefaultRefocusDelay = 10 * time.Millisecond

// Sink receives submitted cell contents. What happens next (execution, new
// cells, output) is up to the implementation.
type Sink interface {
	SubmitInput(content string, vm *domain.CellViewModel)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(content string, vm *domain.CellViewModel)

func (f SinkFunc) SubmitInput(content string, vm *domain.CellViewModel) { f(content, vm) }

// Submission is the outcome of a shift+enter
type Submission struct {
	// Attempted is false when the event carried no editor contents
	Attempted bool
	// Submitted is true when the sink was called
	Submitted  bool
	Content    string
	Directives []Directive
}

// Submitter runs the submit protocol for shift+enter
type Submitter struct {
	sink         Sink
	refocusDelay time.Duration
}

// NewSubmitter creates a submitter forwarding to sink. A negative delay means DefaultRefocusDelay.
func NewSubmitter(sink Sink, refocusDelay time.Duration) *Submitter {
	if refocusDelay < 0 {
		refocusDelay = DefaultRefocusDelay
	}
	return &Submitter{sink: sink, refocusDelay: refocusDelay}
}

// Submit validates and forwards the source cell's editor contents
func (s *Submitter) Submit(source domain.CellRef, ev KeyEvent, reg Registry) Submission {
	if ev.Editor == nil || ev.Editor.Contents == nil {
		return Submission{}
	}

	res := Submission{
		Attempted: true,
		Content:   TrimTrailingNewlines(*ev.Editor.Contents),
	}

	if source.IsEdit() && ev.ShouldClear != nil {
		ev.ShouldClear()
	}

	vm, ok := reg.ResolveCellViewModel(source)
	if !ok {
		return res
	}

	if s.sink != nil {
		s.sink.SubmitInput(res.Content, vm)
	}
	res.Submitted = true
	res.Directives = []Directive{FocusCell{Cell: source, EditMode: true, Delay: s.refocusDelay}}
	return res
}

// TrimTrailingNewlines strips '\n' from the end of s and nothing else
func TrimTrailingNewlines(s string) string {
	return strings.TrimRight(s, "\n")
}
