package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/ui/input/types"
)

type ConfirmMode struct {
	request types.ConfirmRequest
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm"
}

// Prompt returns the question being asked
func (m *ConfirmMode) Prompt() string {
	return m.request.Prompt
}

func (m *ConfirmMode) Enter(ctx types.Context, data interface{}) []types.Action {
	// Store the pending action when entering the mode
	if req, ok := data.(types.ConfirmRequest); ok {
		m.request = req
	}
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.request = types.ConfirmRequest{}
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		// Cancel and return to command mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCommand}}, true
	case "y", "Y", "enter":
		if m.request.Action == nil {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeCommand}}, true
		}
		return []types.Action{
			m.request.Action,
			types.ChangeModeAction{Mode: types.ModeCommand},
		}, true

	case "n", "N":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCommand}}, true
	}

	// Swallow everything else while the question is open
	return nil, true
}
