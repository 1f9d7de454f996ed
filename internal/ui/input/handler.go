package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/ui/input/modes"
	"nbnav/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	confirm     *modes.ConfirmMode
	keys        types.KeyMap
}

// New creates a handler; submit lists extra key strings that run a cell
func New(submit ...string) *Handler {
	keys := types.DefaultKeyMap(submit...)
	h := &Handler{
		currentMode: types.ModeCommand,
		modes:       make(map[types.Mode]types.ModeHandler),
		confirm:     modes.NewConfirmMode(),
		keys:        keys,
	}

	// Register all mode handlers
	h.modes[types.ModeCommand] = modes.NewCommandMode(keys)
	h.modes[types.ModeEdit] = modes.NewEditMode(keys)
	h.modes[types.ModeConfirm] = h.confirm

	return h
}

// HandleKey runs the key through the current mode and applies mode changes.
// The returned actions are for the model to execute.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var allActions []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.changeMode(changeMode.Mode, changeMode.Data, ctx)...)
		} else {
			allActions = append(allActions, action)
		}
	}
	return allActions
}

func (h *Handler) changeMode(mode types.Mode, data interface{}, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx, data)...)
	}
	return actions
}

// Sync follows the editor focus: edit mode while a cell editor is focused,
// command mode otherwise. An open confirmation is left alone.
func (h *Handler) Sync(editing bool, ctx types.Context) {
	if h.currentMode == types.ModeConfirm {
		return
	}
	want := types.ModeCommand
	if editing {
		want = types.ModeEdit
	}
	if want != h.currentMode {
		h.changeMode(want, nil, ctx)
	}
}

// GetMode returns the current input mode
func (h *Handler) GetMode() types.Mode {
	if h == nil {
		return types.ModeCommand
	}
	return h.currentMode
}

// ConfirmPrompt returns the open confirmation question, if any
func (h *Handler) ConfirmPrompt() string {
	if h == nil || h.currentMode != types.ModeConfirm {
		return ""
	}
	return h.confirm.Prompt()
}

// Keys returns the key bindings used by the handler
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}
