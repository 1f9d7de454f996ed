package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nbnav/internal/domain"
	"nbnav/internal/notebook"
	"nbnav/internal/ui/state"
)

func TestStoreReflectsState(t *testing.T) {
	s := state.NewAppState()
	s.AppendCell(domain.Cell{ID: "a", Type: domain.CellTypeCode})
	s.AppendCell(domain.Cell{ID: "m", Type: domain.CellTypeMessages})
	s.AppendCell(domain.Cell{ID: "b", Type: domain.CellTypeMarkdown})
	st := NewStateCellStore(s)

	cells := st.NavigableCells()
	require.Len(t, cells, 2)
	assert.Equal(t, domain.CellID("b"), cells[1].ID)
	assert.Equal(t, 3, st.CellCount())

	vm, ok := st.ResolveCellViewModel(domain.EditCell)
	require.True(t, ok)
	assert.Same(t, s.EditCell, vm)

	// later mutations are visible without rebuilding the store
	s.RemoveCell("a")
	assert.Len(t, st.NavigableCells(), 1)
}

func TestStoreRoutesNavigationWrites(t *testing.T) {
	s := state.NewAppState()
	s.AppendCell(domain.Cell{ID: "a", Type: domain.CellTypeCode})
	st := NewStateCellStore(s)

	c := notebook.NewController(st, nil, 0, nil)
	c.CodeFocusGained(domain.Ref("a"))

	assert.Equal(t, domain.Ref("a"), s.Nav.Focused)
	assert.True(t, st.IsFocused(domain.Ref("a")))
	assert.True(t, st.IsSelected(domain.Ref("a")))
	assert.False(t, st.IsSelected(domain.CellRef{}))
}
