package dispatcher

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/domain"
	"nbnav/internal/logging"
	"nbnav/internal/notebook"
)

// Target is the live surface directives act on
type Target interface {
	// FocusCell gives a cell input focus; editMode puts the cursor in its editor
	FocusCell(ref domain.CellRef, editMode bool) tea.Cmd
	// ScrollToCell brings a cell into view
	ScrollToCell(ref domain.CellRef)
	// FocusPanel makes the notebook panel the active surface
	FocusPanel() tea.Cmd
}

// FiredMsg delivers a deferred directive back to the update loop
type FiredMsg struct {
	Generation uint64
	Directive  notebook.Directive
}

// Dispatcher executes directives. It owns no decision logic.
type Dispatcher struct {
	target     Target
	generation uint64
	log        logging.Logger

	// tick schedules a deferred message; replaced in tests
	tick func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd
}

// New creates a dispatcher without a target
func New(log logging.Logger) *Dispatcher {
	if log == nil {
		log = logging.Nop()
	}
	return &Dispatcher{
		log:  log.With(logging.F("component", "dispatcher")),
		tick: tea.Tick,
	}
}

// Attach sets the surface directives act on
func (d *Dispatcher) Attach(t Target) {
	d.target = t
}

// Detach drops the target and cancels everything pending
func (d *Dispatcher) Detach() {
	d.target = nil
	d.Cancel()
}

// Cancel invalidates all deferred directives scheduled so far
func (d *Dispatcher) Cancel() {
	d.generation++
}

// Dispatch runs immediate directives now and schedules delayed ones
func (d *Dispatcher) Dispatch(directives ...notebook.Directive) tea.Cmd {
	var cmds []tea.Cmd
	for _, dir := range directives {
		if delay := delayOf(dir); delay > 0 {
			cmds = append(cmds, d.schedule(dir, delay))
			continue
		}
		if cmd := d.run(dir); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Fired runs a deferred directive unless it was cancelled meanwhile
func (d *Dispatcher) Fired(msg FiredMsg) tea.Cmd {
	if msg.Generation != d.generation {
		d.log.Debug("dropping cancelled directive", logging.F("directive", describe(msg.Directive)))
		return nil
	}
	return d.run(msg.Directive)
}

// Generation identifies the current batch of deferred directives
func (d *Dispatcher) Generation() uint64 {
	return d.generation
}

func (d *Dispatcher) schedule(dir notebook.Directive, delay time.Duration) tea.Cmd {
	gen := d.generation
	return d.tick(delay, func(time.Time) tea.Msg {
		return FiredMsg{Generation: gen, Directive: dir}
	})
}

func (d *Dispatcher) run(dir notebook.Directive) tea.Cmd {
	if d.target == nil {
		d.log.Debug("no target, skipping directive", logging.F("directive", describe(dir)))
		return nil
	}

	switch dir := dir.(type) {
	case notebook.FocusCell:
		return d.target.FocusCell(dir.Cell, dir.EditMode)

	case notebook.Scroll:
		d.target.ScrollToCell(dir.Cell)
		return nil

	case notebook.Activate:
		return tea.Sequence(
			d.target.FocusPanel(),
			d.target.FocusCell(domain.EditCell, true),
		)
	}
	return nil
}

func delayOf(dir notebook.Directive) time.Duration {
	switch dir := dir.(type) {
	case notebook.FocusCell:
		return dir.Delay
	case notebook.Activate:
		return dir.Delay
	}
	return 0
}

func describe(dir notebook.Directive) string {
	switch dir := dir.(type) {
	case notebook.FocusCell:
		if dir.EditMode {
			return "focus " + dir.Cell.String() + " (edit)"
		}
		return "focus " + dir.Cell.String()
	case notebook.Scroll:
		return "scroll " + dir.Cell.String()
	case notebook.Activate:
		return "activate"
	}
	return "unknown"
}
