package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRef(t *testing.T) {
	assert.True(t, Ref("").IsZero())
	assert.Equal(t, EditCell, Ref(EditCellID))
	assert.True(t, Ref(EditCellID).IsEdit())

	r := Ref("a1")
	assert.False(t, r.IsZero())
	assert.False(t, r.IsEdit())
	assert.Equal(t, CellID("a1"), r.ID())
	assert.Equal(t, Ref("a1"), r, "refs to the same id compare equal")
	assert.NotEqual(t, EditCell, r)
}

func TestRefString(t *testing.T) {
	assert.Equal(t, "<none>", CellRef{}.String())
	assert.Equal(t, "edit-cell", EditCell.String())
	assert.Equal(t, "c7", Ref("c7").String())
}

func TestCellNavigable(t *testing.T) {
	assert.True(t, Cell{Type: CellTypeCode}.Navigable())
	assert.True(t, Cell{Type: CellTypeMarkdown}.Navigable())
	assert.False(t, Cell{Type: CellTypeMessages}.Navigable())
}

func TestEditCellViewModel(t *testing.T) {
	vm := NewEditCellViewModel()
	assert.True(t, vm.IsEditCell())
	assert.True(t, vm.Editable)
	assert.False(t, NewCellViewModel(Cell{ID: "x", Type: CellTypeCode}).IsEditCell())

	var nilVM *CellViewModel
	assert.False(t, nilVM.IsEditCell())
}
