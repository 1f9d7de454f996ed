package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nbnav/internal/domain"
	"nbnav/internal/eventbus"
	"nbnav/internal/ui/state"
)

func runningState(t *testing.T) *state.AppState {
	t.Helper()
	st := state.NewAppState()
	_, ok := st.AppendCell(domain.Cell{ID: "a", Type: domain.CellTypeCode, ExecutionCount: 3})
	require.True(t, ok)
	st.MarkRunning("a")
	return st
}

func TestExecutionStartedMarksRunning(t *testing.T) {
	st := runningState(t)
	h := NewEventHandler(st)

	cmd := h.HandleEvent(eventbus.ExecutionStartedEvent{CellID: "a"})
	assert.NotNil(t, cmd, "first running cell starts the spinner")
	assert.True(t, st.Spinning)
	assert.Equal(t, domain.CellRunning, st.Cells[0].Cell.State)
}

func TestSpinnerStartsOnceForQueuedCells(t *testing.T) {
	st := runningState(t)
	_, ok := st.AppendCell(domain.Cell{ID: "b", Type: domain.CellTypeCode})
	require.True(t, ok)
	st.MarkRunning("b")
	h := NewEventHandler(st)

	// Both cells were queued before either started
	cmd := h.HandleEvent(eventbus.ExecutionStartedEvent{CellID: "a"})
	assert.NotNil(t, cmd)

	cmd = h.HandleEvent(eventbus.ExecutionStartedEvent{CellID: "b"})
	assert.Nil(t, cmd, "the running spinner is reused")
	assert.Equal(t, domain.CellRunning, st.Cells[1].Cell.State)
}

func TestConfigSavedSetsStatus(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st)

	h.HandleEvent(eventbus.ConfigSavedEvent{Path: "/tmp/nbnav/config.toml"})
	assert.Equal(t, "Saved default config to /tmp/nbnav/config.toml", st.StatusMessage)
}

func TestCellExecutedStoresOutputs(t *testing.T) {
	st := runningState(t)
	h := NewEventHandler(st)

	h.HandleEvent(eventbus.CellExecutedEvent{
		CellID:   "a",
		Outputs:  []domain.Output{{Text: "hi"}},
		Duration: 1500 * time.Microsecond,
	})

	cell := st.Cells[0].Cell
	assert.Equal(t, domain.CellFinished, cell.State)
	assert.Equal(t, []domain.Output{{Text: "hi"}}, cell.Outputs)
	assert.False(t, st.IsRunning("a"))
	assert.Equal(t, "[3] finished in 2ms", st.StatusMessage)
}

func TestCellExecutedFailure(t *testing.T) {
	st := runningState(t)
	h := NewEventHandler(st)

	h.HandleEvent(eventbus.CellExecutedEvent{CellID: "a", Failed: true})
	assert.Equal(t, domain.CellError, st.Cells[0].Cell.State)
	assert.Equal(t, "[3] failed", st.StatusMessage)
}

func TestCellExecutedForDeletedCell(t *testing.T) {
	st := runningState(t)
	st.RemoveCell("a")
	h := NewEventHandler(st)

	assert.Nil(t, h.HandleEvent(eventbus.CellExecutedEvent{CellID: "a"}))
	assert.Empty(t, st.RunningCells)
}

func TestErrorEventSetsStatus(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st)

	h.HandleEvent(eventbus.ErrorEvent{Message: "boom"})
	assert.Equal(t, "Error: boom", st.StatusMessage)
}
