package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/ui/input/types"
)

// EditMode routes every key to the focused cell. Keys the controller does
// not stop end up in the cell editor.
type EditMode struct {
	keys types.KeyMap
}

func NewEditMode(keys types.KeyMap) *EditMode {
	return &EditMode{keys: keys}
}

func (m *EditMode) Name() string {
	return "edit"
}

func (m *EditMode) Enter(ctx types.Context, data interface{}) []types.Action {
	return nil
}

func (m *EditMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *EditMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	source := ctx.Source()
	ev := m.keys.Translate(msg, ctx.Editor())
	if source.IsEdit() {
		ev.ShouldClear = ctx.ClearEditCell()
	}
	return []types.Action{types.CellKeyAction{Cell: source, Event: ev, Msg: msg}}, true
}
