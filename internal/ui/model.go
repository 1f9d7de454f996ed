package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"nbnav/internal/config"
	"nbnav/internal/domain"
	"nbnav/internal/eventbus"
	"nbnav/internal/logging"
	"nbnav/internal/notebook"
	"nbnav/internal/ui/commands"
	"nbnav/internal/ui/dispatcher"
	"nbnav/internal/ui/handlers"
	"nbnav/internal/ui/input"
	inputtypes "nbnav/internal/ui/input/types"
	"nbnav/internal/ui/services/viewport"
	"nbnav/internal/ui/state"
	"nbnav/internal/ui/store"
	"nbnav/internal/ui/viewmodels"
	"nbnav/internal/ui/views"
)

// editorChrome is the horizontal space around a cell editor: container
// padding, prompt column and cell border
const editorChrome = 4 + 6 + 2

// wheelStep is how many lines one mouse wheel notch scrolls
const wheelStep = 3

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	log    logging.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	// pendingScroll is applied once the next frame's layout is known
	pendingScroll domain.CellRef

	// ready is set once the first frame has been laid out
	ready bool

	// Handlers
	store        *store.StateCellStore  // cell store for data access
	controller   *notebook.Controller   // navigation decisions
	dispatcher   *dispatcher.Dispatcher // carries out navigation directives
	editors      *viewmodels.Editors    // cell text areas
	viewModel    *viewmodels.ViewModel  // view model for rendering
	renderer     *views.Renderer        // view renderer
	viewport     *viewport.Service      // scroll position of the cell list
	eventHandler *handlers.EventHandler // event processing handler
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	pager        *PagerOps              // ov pager for help and outputs

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, log logging.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logging.Nop()
	}
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		log:          log.With(logging.F("component", "ui")),
		renderer:     views.NewRenderer(),
		viewport:     viewport.NewService(),
		inputHandler: input.New(cfg.Keys.Submit...),
		pager:        NewPagerOps(),
	}

	m.store = store.NewStateCellStore(appState)
	m.eventHandler = handlers.NewEventHandler(appState)
	m.cmdExecutor = commands.NewExecutor(appState, bus)

	// The command executor is the submission sink: submitted input becomes cells
	submitter := notebook.NewSubmitter(m.cmdExecutor, cfg.UISettings.RefocusDelay())
	m.controller = notebook.NewController(m.store, submitter, cfg.UISettings.ActivationDelay(), log)

	m.dispatcher = dispatcher.New(log)
	m.dispatcher.Attach(m)

	m.editors = viewmodels.NewEditors(cfg.UISettings.EditorHeight, cfg.UISettings.ShowLineNumbers)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.editors)
	m.viewModel.SetKeys(m.inputHandler.Keys())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init activates the notebook panel
func (m *Model) Init() tea.Cmd {
	cmd := m.dispatcher.Dispatch(m.controller.Activate(m.config.UISettings.AllowInput)...)
	m.syncMode()
	return cmd
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.viewport.SetWindowHeight(msg.Height)
		m.editors.SetWidth(msg.Width - editorChrome)
		return m, nil

	case tea.KeyMsg:
		// Help popup swallows keys until closed
		if m.state.ShowHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, m.quit()
			}
			return m, nil
		}

		actions := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.syncMode()
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case dispatcher.FiredMsg:
		cmd := m.dispatcher.Fired(msg)
		m.syncMode()
		return m, cmd

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetInputMode(m.inputHandler.GetMode().String(), m.inputHandler.ConfirmPrompt())

	// Lay the document out first so scrolling can use this frame's geometry
	layoutState := m.viewModel.BuildViewState(0, m.viewport.GetHeight())
	lines, spans := m.renderer.Document(layoutState)
	m.viewport.SetLayout(spans, len(lines))
	if !m.pendingScroll.IsZero() {
		m.viewport.ScrollTo(m.pendingScroll)
		m.pendingScroll = domain.CellRef{}
	}

	viewState := m.viewModel.BuildViewState(m.viewport.GetOffset(), m.viewport.GetHeight())
	out := m.renderer.Render(viewState, lines)
	if !m.ready {
		m.ready = true
		if m.bus != nil {
			m.bus.Publish(eventbus.AppReadyEvent{})
		}
	}
	return out
}

// FocusCell implements dispatcher.Target. In edit mode the cell's editor is
// opened and takes the cursor; otherwise any open editor is closed.
func (m *Model) FocusCell(ref domain.CellRef, editMode bool) tea.Cmd {
	if ref.IsZero() {
		return nil
	}
	vm, ok := m.store.ResolveCellViewModel(ref)
	if !ok {
		// Removed while the directive was pending
		return nil
	}

	if !editMode {
		m.closeEditor()
		return nil
	}
	if !vm.Editable {
		return nil
	}

	if active := m.editors.Active(); !active.IsZero() && active != ref {
		m.closeEditor()
	}
	cmd := m.editors.Open(ref, vm.Cell.Source)
	m.controller.CodeFocusGained(ref)
	m.log.Debug("editor focused", logging.F("cell", ref))
	return cmd
}

// ScrollToCell implements dispatcher.Target
func (m *Model) ScrollToCell(ref domain.CellRef) {
	m.pendingScroll = ref
}

// FocusPanel implements dispatcher.Target
func (m *Model) FocusPanel() tea.Cmd {
	m.state.PanelFocused = true
	return nil
}

// closeEditor blurs the open editor, keeping what was typed
func (m *Model) closeEditor() {
	ref, value, ok := m.editors.Close()
	if !ok {
		return
	}
	m.state.SetCellSource(ref, value)
	m.controller.CodeFocusLost(ref)
	m.log.Debug("editor blurred", logging.F("cell", ref))
}

// clearEditCell empties the edit cell after its content was taken for submission
func (m *Model) clearEditCell() {
	m.editors.ClearEditCell()
	m.state.SetCellSource(domain.EditCell, "")
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Store:    m.store,
		EditorFn: m.editors.Info,
		ClearFn:  m.clearEditCell,
	}
}

// syncMode keeps the input mode in line with the editor focus
func (m *Model) syncMode() {
	m.inputHandler.Sync(!m.editors.Active().IsZero(), m.inputContext())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug("action", logging.F("type", action.Type()))

	switch a := action.(type) {
	case inputtypes.CellKeyAction:
		t := m.controller.KeyDown(a.Cell, a.Event)
		cmds := []tea.Cmd{m.dispatcher.Dispatch(t.Directives...)}
		// Keys the controller let through belong to the editor
		if !t.StopPropagation && !t.PreventDefault && m.editors.Active() == a.Cell && !a.Cell.IsZero() {
			cmds = append(cmds, m.editors.Update(a.Msg))
		}
		return tea.Batch(cmds...)

	case inputtypes.InsertCellAction:
		id, cmd := m.cmdExecutor.ExecuteInsert(a.Below)
		if id != "" {
			m.ScrollToCell(domain.Ref(id))
		}
		return cmd

	case inputtypes.DeleteCellAction:
		cmd := m.cmdExecutor.ExecuteDelete(a.Cell)
		m.ScrollToCell(m.state.Nav.Selected)
		return cmd

	case inputtypes.MoveCellAction:
		cmd := m.cmdExecutor.ExecuteMove(a.Cell, a.Up)
		m.ScrollToCell(m.state.Nav.Selected)
		return cmd

	case inputtypes.ClearAllAction:
		// Pending refocus of removed cells must not fire
		m.dispatcher.Cancel()
		return m.cmdExecutor.ExecuteClearAll()

	case inputtypes.SetCellTypeAction:
		return m.cmdExecutor.ExecuteSetCellType(a.Cell, a.CellType)

	case inputtypes.CopyCellAction:
		return m.cmdExecutor.ExecuteCopy(a.Cell)

	case inputtypes.OpenOutputAction:
		vm, ok := m.store.GetCell(a.Cell)
		if !ok {
			return nil
		}
		text := views.OutputText(vm.Cell)
		if text == "" {
			m.state.StatusMessage = "No output"
			return nil
		}
		return m.openPager("output", text)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.ShowHelpPagerAction:
		return m.openPager("help", RenderHelpContent(m.inputHandler.Keys()))

	case inputtypes.StatusAction:
		m.state.StatusMessage = a.Message

	case inputtypes.QuitAction:
		return m.quit()
	}

	return nil
}

// handleMouse selects the clicked cell and scrolls with the wheel
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.viewport.ScrollBy(-wheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.viewport.ScrollBy(wheelStep)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		ref, ok := m.viewport.CellAt(msg.Y - views.ListTop)
		if !ok {
			return nil
		}
		next := m.controller.Click(ref)
		// Clicking another cell takes the cursor out of the open editor
		if active := m.editors.Active(); !active.IsZero() && next.Focused != active {
			m.closeEditor()
		}
		m.syncMode()
	}
	return nil
}

// openPager returns a command that shows content in the ov pager
func (m *Model) openPager(what, content string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
		}

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		if m.program != nil {
			m.program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{what: what, err: err}
	}
}

func (m *Model) quit() tea.Cmd {
	m.closeEditor()
	m.dispatcher.Detach()
	return tea.Quit
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		// Process domain events
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd

	case handlers.TickMsg:
		// Don't continue the spinner while paged out or idle
		if m.inPagerMode || len(m.state.RunningCells) == 0 {
			m.state.Spinning = false
			return m, nil
		}
		m.viewModel.Tick()
		return m, handlers.Tick()

	case pagerMsg:
		if msg.err != nil {
			m.log.Warn("pager failed", logging.F("what", msg.what), logging.F("err", msg.err))
			m.state.StatusMessage = fmt.Sprintf("Error: pager failed: %v", msg.err)
			return m, tea.Tick(3*time.Second, func(t time.Time) tea.Msg { return clearStatusMsg{} })
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		if len(m.state.RunningCells) > 0 && !m.state.Spinning {
			m.state.Spinning = true
			return m, handlers.Tick()
		}
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// Cursor blink and other editor messages
		return m, m.editors.Update(msg)
	}
}

var _ dispatcher.Target = (*Model)(nil)
