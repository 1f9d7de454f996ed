package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nbnav/internal/domain"
	"nbnav/internal/notebook"
	"nbnav/internal/ui/input/types"
	"nbnav/internal/ui/state"
	"nbnav/internal/ui/store"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newContext(t *testing.T, ids ...string) (*ModelContext, *state.AppState) {
	t.Helper()
	st := state.NewAppState()
	for _, id := range ids {
		_, ok := st.AppendCell(domain.Cell{ID: domain.CellID(id), Type: domain.CellTypeCode})
		require.True(t, ok)
	}
	return &ModelContext{Store: store.NewStateCellStore(st)}, st
}

func TestSourceCell(t *testing.T) {
	a, b := domain.Ref("a"), domain.Ref("b")
	assert.Equal(t, domain.EditCell, SourceCell(notebook.NavigationState{}))
	assert.Equal(t, a, SourceCell(notebook.NavigationState{Selected: a}))
	assert.Equal(t, b, SourceCell(notebook.NavigationState{Selected: a, Focused: b}))
}

func TestCommandModeTranslatesNavigationKeys(t *testing.T) {
	ctx, st := newContext(t, "a", "b")
	st.Nav.Selected = domain.Ref("a")
	h := New()

	tests := []struct {
		msg  tea.KeyMsg
		code notebook.KeyCode
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, notebook.KeyArrowUp},
		{tea.KeyMsg{Type: tea.KeyDown}, notebook.KeyArrowDown},
		{runes("k"), notebook.KeyArrowUp},
		{runes("j"), notebook.KeyArrowDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, notebook.KeyEnter},
		{tea.KeyMsg{Type: tea.KeyEsc}, notebook.KeyEscape},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			actions := h.HandleKey(tt.msg, ctx)
			require.Len(t, actions, 1)
			action, ok := actions[0].(types.CellKeyAction)
			require.True(t, ok)
			assert.Equal(t, domain.Ref("a"), action.Cell)
			assert.Equal(t, tt.code, action.Event.Code)
			assert.False(t, action.Event.Shift)
			assert.Nil(t, action.Event.Editor)
		})
	}
}

func TestSubmitKeysAreShiftEnter(t *testing.T) {
	ctx, _ := newContext(t)
	h := New("ctrl+s")

	actions := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlS}, ctx)
	require.Len(t, actions, 1)
	action := actions[0].(types.CellKeyAction)
	assert.Equal(t, notebook.KeyEnter, action.Event.Code)
	assert.True(t, action.Event.Shift)
	assert.Equal(t, domain.EditCell, action.Cell)
}

func TestEditModeSendsEveryKeyToFocusedCell(t *testing.T) {
	ctx, st := newContext(t, "a")
	st.Nav = notebook.NavigationState{Selected: domain.Ref("a"), Focused: domain.Ref("a")}
	info := &notebook.EditorInfo{IsFirstLine: true}
	ctx.EditorFn = func() *notebook.EditorInfo { return info }

	h := New()
	h.Sync(true, ctx)
	require.Equal(t, types.ModeEdit, h.GetMode())

	// j is text in the editor
	actions := h.HandleKey(runes("j"), ctx)
	require.Len(t, actions, 1)
	action := actions[0].(types.CellKeyAction)
	assert.Equal(t, notebook.KeyOther, action.Event.Code)
	assert.Same(t, info, action.Event.Editor)
	assert.Nil(t, action.Event.ShouldClear)
	assert.Equal(t, "j", action.Msg.String())
}

func TestEditModeCarriesClearForEditCell(t *testing.T) {
	ctx, st := newContext(t)
	st.Nav = notebook.NavigationState{Selected: domain.EditCell, Focused: domain.EditCell}
	cleared := false
	ctx.ClearFn = func() { cleared = true }
	ctx.EditorFn = func() *notebook.EditorInfo { return &notebook.EditorInfo{} }

	h := New()
	h.Sync(true, ctx)
	actions := h.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, ctx)
	action := actions[0].(types.CellKeyAction)
	require.NotNil(t, action.Event.ShouldClear)
	action.Event.ShouldClear()
	assert.True(t, cleared)
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	ctx, st := newContext(t, "a")
	st.Nav.Selected = domain.Ref("a")
	h := New()

	actions := h.HandleKey(runes("d"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeConfirm, h.GetMode())
	assert.Equal(t, "Delete cell a?", h.ConfirmPrompt())

	// Sync must not close the question
	h.Sync(false, ctx)
	assert.Equal(t, types.ModeConfirm, h.GetMode())

	actions = h.HandleKey(runes("y"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.DeleteCellAction{Cell: "a"}, actions[0])
	assert.Equal(t, types.ModeCommand, h.GetMode())
	assert.Empty(t, h.ConfirmPrompt())
}

func TestConfirmCancel(t *testing.T) {
	ctx, _ := newContext(t, "a")
	h := New()

	h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlL}, ctx)
	require.Equal(t, types.ModeConfirm, h.GetMode())

	assert.Empty(t, h.HandleKey(runes("x"), ctx))
	assert.Equal(t, types.ModeConfirm, h.GetMode())

	assert.Empty(t, h.HandleKey(runes("n"), ctx))
	assert.Equal(t, types.ModeCommand, h.GetMode())
}

func TestCellCommandsNeedSelectedCell(t *testing.T) {
	ctx, st := newContext(t, "a")
	h := New()

	assert.Empty(t, h.HandleKey(runes("y"), ctx))

	st.Nav.Selected = domain.Ref("a")
	assert.Equal(t, []types.Action{types.CopyCellAction{Cell: "a"}}, h.HandleKey(runes("y"), ctx))
	assert.Equal(t, []types.Action{types.SetCellTypeAction{Cell: "a", CellType: domain.CellTypeMarkdown}}, h.HandleKey(runes("m"), ctx))
	assert.Equal(t, []types.Action{types.OpenOutputAction{Cell: "a"}}, h.HandleKey(runes("o"), ctx))
}

func TestMoveKeys(t *testing.T) {
	ctx, st := newContext(t, "a", "b")
	h := New()

	// Nothing selected
	assert.Empty(t, h.HandleKey(runes("K"), ctx))

	st.Nav.Selected = domain.Ref("b")
	assert.Equal(t, []types.Action{types.MoveCellAction{Cell: "b", Up: true}}, h.HandleKey(runes("K"), ctx))
	assert.Equal(t, []types.Action{types.MoveCellAction{Cell: "b"}}, h.HandleKey(runes("J"), ctx))
	assert.Equal(t, []types.Action{types.MoveCellAction{Cell: "b", Up: true}}, h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlUp}, ctx))
}

func TestClearAllOnEmptyDocument(t *testing.T) {
	ctx, _ := newContext(t)
	h := New()

	actions := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlL}, ctx)
	assert.Equal(t, []types.Action{types.StatusAction{Message: "Nothing to clear"}}, actions)
	assert.Equal(t, types.ModeCommand, h.GetMode())
}

func TestQuitKeys(t *testing.T) {
	ctx, _ := newContext(t)
	h := New()

	assert.Equal(t, []types.Action{types.QuitAction{}}, h.HandleKey(runes("q"), ctx))
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx))

	h.Sync(true, ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx))
}
