package notebook

import (
	"nbnav/internal/domain"
)

func code(id string) *domain.CellViewModel {
	return domain.NewCellViewModel(domain.Cell{ID: domain.CellID(id), Type: domain.CellTypeCode})
}

func messages(id string) *domain.CellViewModel {
	return domain.NewCellViewModel(domain.Cell{ID: domain.CellID(id), Type: domain.CellTypeMessages})
}

func ref(id string) domain.CellRef {
	return domain.Ref(domain.CellID(id))
}

func str(s string) *string { return &s }

func editor(first, last bool) *EditorInfo {
	return &EditorInfo{IsFirstLine: first, IsLastLine: last}
}

// memDoc is an in-memory Document
type memDoc struct {
	Registry
	nav NavigationState
}

func newMemDoc(vms ...*domain.CellViewModel) *memDoc {
	return &memDoc{Registry: NewRegistry(vms, nil)}
}

func (d *memDoc) Navigation() NavigationState     { return d.nav }
func (d *memDoc) SetNavigation(s NavigationState) { d.nav = s }

type recordingSink struct {
	calls []sinkCall
	// onSubmit runs inside SubmitInput
	onSubmit func()
}

type sinkCall struct {
	content string
	vm      *domain.CellViewModel
}

func (s *recordingSink) SubmitInput(content string, vm *domain.CellViewModel) {
	s.calls = append(s.calls, sinkCall{content: content, vm: vm})
	if s.onSubmit != nil {
		s.onSubmit()
	}
}
