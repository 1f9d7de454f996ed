package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"nbnav/internal/config"
	"nbnav/internal/ui/state"
	"nbnav/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state        *state.AppState
	config       *config.Config
	editors      *Editors
	width        int
	height       int
	help         help.Model
	keys         help.KeyMap
	inputMode    string
	confirm      string
	spinnerFrame int
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, editors *Editors) *ViewModel {
	return &ViewModel{
		state:   appState,
		config:  cfg,
		editors: editors,
		help:    help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetKeys sets the key map shown in the help line
func (vm *ViewModel) SetKeys(keys help.KeyMap) {
	vm.keys = keys
}

// SetInputMode sets the mode label and any open confirmation question
func (vm *ViewModel) SetInputMode(mode, confirmPrompt string) {
	vm.inputMode = mode
	vm.confirm = confirmPrompt
}

// Tick advances the running spinner
func (vm *ViewModel) Tick() {
	vm.spinnerFrame++
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(offset, viewportHeight int) views.ViewState {
	return views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		Cells:           vm.state.Cells,
		EditCell:        vm.state.EditCell,
		Selected:        vm.state.Nav.Selected,
		Focused:         vm.state.Nav.Focused,
		Editor:          vm.editors.View(),
		ShowLineNumbers: vm.config.UISettings.ShowLineNumbers,
		RenderMarkdown:  vm.config.UISettings.RenderMarkdown,
		SpinnerFrame:    vm.spinnerFrame,
		RunningCount:    len(vm.state.RunningCells),
		StatusMessage:   vm.state.StatusMessage,
		InputMode:       vm.inputMode,
		ConfirmPrompt:   vm.confirm,
		ShowHelp:        vm.state.ShowHelp,
		HelpModel:       vm.help,
		Keys:            vm.keys,
		ViewportOffset:  offset,
		ViewportHeight:  viewportHeight,
	}
}
