package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/domain"
	"nbnav/internal/notebook"
	"nbnav/internal/ui/input/types"
)

// CommandMode handles keys while no cell editor has the cursor
type CommandMode struct {
	keys types.KeyMap
}

func NewCommandMode(keys types.KeyMap) *CommandMode {
	return &CommandMode{keys: keys}
}

func (m *CommandMode) Name() string {
	return "command"
}

func (m *CommandMode) Enter(ctx types.Context, data interface{}) []types.Action {
	return nil
}

func (m *CommandMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *CommandMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// Navigation keys go to the source cell
	if ev := m.keys.Translate(msg, nil); ev.Code != notebook.KeyOther {
		return []types.Action{types.CellKeyAction{Cell: ctx.Source(), Event: ev, Msg: msg}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.HelpPager):
		return []types.Action{types.ShowHelpPagerAction{}}, true

	case key.Matches(msg, m.keys.InsertAbove):
		return []types.Action{types.InsertCellAction{}}, true

	case key.Matches(msg, m.keys.InsertBelow):
		return []types.Action{types.InsertCellAction{Below: true}}, true

	case key.Matches(msg, m.keys.ClearAll):
		if ctx.CellCount() == 0 {
			return []types.Action{types.StatusAction{Message: "Nothing to clear"}}, true
		}
		return []types.Action{types.ChangeModeAction{
			Mode: types.ModeConfirm,
			Data: types.ConfirmRequest{Prompt: "Clear all cells?", Action: types.ClearAllAction{}},
		}}, true
	}

	// The remaining commands need a selected content cell
	vm, ok := ctx.CurrentCell()
	if !ok {
		return nil, false
	}
	id := vm.Cell.ID

	switch {
	case key.Matches(msg, m.keys.Delete):
		return []types.Action{types.ChangeModeAction{
			Mode: types.ModeConfirm,
			Data: types.ConfirmRequest{Prompt: "Delete cell " + string(id) + "?", Action: types.DeleteCellAction{Cell: id}},
		}}, true

	case key.Matches(msg, m.keys.MoveUp):
		return []types.Action{types.MoveCellAction{Cell: id, Up: true}}, true

	case key.Matches(msg, m.keys.MoveDown):
		return []types.Action{types.MoveCellAction{Cell: id}}, true

	case key.Matches(msg, m.keys.Copy):
		return []types.Action{types.CopyCellAction{Cell: id}}, true

	case key.Matches(msg, m.keys.Markdown):
		return []types.Action{types.SetCellTypeAction{Cell: id, CellType: domain.CellTypeMarkdown}}, true

	case key.Matches(msg, m.keys.Code):
		return []types.Action{types.SetCellTypeAction{Cell: id, CellType: domain.CellTypeCode}}, true

	case key.Matches(msg, m.keys.Output):
		return []types.Action{types.OpenOutputAction{Cell: id}}, true
	}

	return nil, false
}
