package domain

// CellRef references either an ordinary cell or the trailing edit cell.
// The zero value references nothing.
type CellRef struct {
	id   CellID
	edit bool
}

// EditCell is the reference to the trailing input cell
var EditCell = CellRef{id: EditCellID, edit: true}

// Ref returns a reference to an ordinary cell. The reserved edit cell id
// maps to EditCell and the empty id maps to the zero reference.
func Ref(id CellID) CellRef {
	switch id {
	case "":
		return CellRef{}
	case EditCellID:
		return EditCell
	}
	return CellRef{id: id}
}

// IsZero reports whether the reference points to no cell
func (r CellRef) IsZero() bool {
	return r.id == "" && !r.edit
}

// IsEdit reports whether the reference points to the edit cell
func (r CellRef) IsEdit() bool {
	return r.edit
}

// ID returns the referenced cell id, EditCellID for the edit cell
func (r CellRef) ID() CellID {
	return r.id
}

func (r CellRef) String() string {
	switch {
	case r.IsZero():
		return "<none>"
	case r.edit:
		return "edit-cell"
	}
	return string(r.id)
}
