package notebook

import (
	"time"

	"nbnav/internal/domain"
	"nbnav/internal/logging"
)

// DefaultActivationDelay gives the host panel time to take focus before the edit cell does
const DefaultActivationDelay = 100 * time.Millisecond

// Document is the state container the controller reads from and writes to
type Document interface {
	Registry
	Navigation() NavigationState
	SetNavigation(NavigationState)
}

// Controller receives per-cell events, decides with Navigate and Submitter,
// and applies the resulting state to the document.
type Controller struct {
	doc             Document
	submitter       *Submitter
	activationDelay time.Duration
	log             logging.Logger
}

// NewController wires a controller to its document and submitter
func NewController(doc Document, submitter *Submitter, activationDelay time.Duration, log logging.Logger) *Controller {
	if log == nil {
		log = logging.Nop()
	}
	if submitter == nil {
		submitter = NewSubmitter(nil, DefaultRefocusDelay)
	}
	if activationDelay < 0 {
		activationDelay = DefaultActivationDelay
	}
	return &Controller{
		doc:             doc,
		submitter:       submitter,
		activationDelay: activationDelay,
		log:             log.With(logging.F("component", "navigation")),
	}
}

// State returns the document's current navigation state
func (c *Controller) State() NavigationState {
	return c.doc.Navigation()
}

// KeyDown handles a key pressed in the source cell
func (c *Controller) KeyDown(source domain.CellRef, ev KeyEvent) Transition {
	before := c.doc.Navigation()

	if ev.Code == KeyEnter && ev.Shift {
		sub := c.submitter.Submit(source, ev, c.doc)
		if !sub.Attempted {
			return unchanged(before)
		}
		c.log.Debug("submit",
			logging.F("cell", source),
			logging.F("submitted", sub.Submitted),
			logging.F("bytes", len(sub.Content)))
		return Transition{
			State:           c.doc.Navigation(),
			Directives:      sub.Directives,
			StopPropagation: true,
			PreventDefault:  true,
		}
	}

	t := Navigate(before, source, ev, c.doc)
	if t.State != before {
		c.doc.SetNavigation(t.State)
		c.log.Debug("navigate",
			logging.F("key", ev.Code),
			logging.F("from", before),
			logging.F("to", t.State))
		if t.State.Selected != before.Selected && !t.State.Selected.IsZero() {
			t.Directives = append(t.Directives, Scroll{Cell: t.State.Selected})
		}
	}
	return t
}

// Click selects the source cell. Focus is kept only if the cell already had it.
func (c *Controller) Click(source domain.CellRef) NavigationState {
	state := c.doc.Navigation()
	next := NavigationState{Selected: source}
	if !source.IsZero() && state.Focused == source {
		next.Focused = source
	}
	c.doc.SetNavigation(next)
	return next
}

// CodeFocusGained records that the source cell's editor took the cursor
func (c *Controller) CodeFocusGained(source domain.CellRef) NavigationState {
	next := NavigationState{Selected: source, Focused: source}
	c.doc.SetNavigation(next)
	return next
}

// CodeFocusLost records that the source cell's editor gave up the cursor.
// Selection is kept.
func (c *Controller) CodeFocusLost(source domain.CellRef) NavigationState {
	state := c.doc.Navigation()
	if state.Focused == source {
		state.Focused = domain.CellRef{}
		c.doc.SetNavigation(state)
	}
	return state
}

// Activate returns the startup directive when input is allowed
func (c *Controller) Activate(allowInput bool) []Directive {
	if !allowInput {
		return nil
	}
	return []Directive{Activate{Delay: c.activationDelay}}
}
