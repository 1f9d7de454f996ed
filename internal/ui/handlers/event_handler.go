package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/domain"
	"nbnav/internal/eventbus"
	"nbnav/internal/ui/state"
)

// TickMsg is a tick message for the running spinner
type TickMsg time.Time

// spinnerInterval is how often the running indicator advances
const spinnerInterval = 80 * time.Millisecond

// Tick schedules the next spinner frame
func Tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{
		state: appState,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ExecutionStartedEvent:
		vm, ok := h.state.GetCell(e.CellID)
		if !ok {
			return nil
		}
		vm.Cell.State = domain.CellRunning
		// One tick chain at a time
		if !h.state.Spinning {
			h.state.Spinning = true
			return Tick()
		}

	case eventbus.CellExecutedEvent:
		delete(h.state.RunningCells, e.CellID)
		vm, ok := h.state.GetCell(e.CellID)
		if !ok {
			// Deleted while running
			return nil
		}
		vm.Cell.Outputs = e.Outputs
		vm.Cell.Duration = e.Duration
		if e.Failed {
			vm.Cell.State = domain.CellError
			h.state.StatusMessage = fmt.Sprintf("[%d] failed", vm.Cell.ExecutionCount)
		} else {
			vm.Cell.State = domain.CellFinished
			h.state.StatusMessage = fmt.Sprintf("[%d] finished in %s", vm.Cell.ExecutionCount, e.Duration.Round(time.Millisecond))
		}

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)

	case eventbus.ConfigLoadedEvent:
		h.state.StatusMessage = fmt.Sprintf("Loaded config from %s", e.Path)

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = fmt.Sprintf("Saved default config to %s", e.Path)
	}

	return nil
}
