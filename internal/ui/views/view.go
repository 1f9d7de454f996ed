package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"nbnav/internal/domain"
	"nbnav/internal/ui/services/viewport"
)

// ListTop is the screen row of the first cell list line: one padding row
// and the title line sit above it.
const ListTop = 2

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Cells           []*domain.CellViewModel
	EditCell        *domain.CellViewModel
	Selected        domain.CellRef
	Focused         domain.CellRef
	Editor          string // rendered editor of the focused cell
	ShowLineNumbers bool
	RenderMarkdown  bool
	SpinnerFrame    int
	RunningCount    int
	StatusMessage   string
	InputMode       string
	ConfirmPrompt   string
	ShowHelp        bool
	HelpModel       help.Model
	Keys            help.KeyMap
	ViewportOffset  int
	ViewportHeight  int
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cellRender  *CellRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cellRender:  NewCellRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Document renders every cell and reports the lines each one occupies
func (r *Renderer) Document(state ViewState) ([]string, []viewport.Span) {
	var lines []string
	var spans []viewport.Span

	width := state.Width - 4 // main container padding
	if width <= 0 {
		width = 76
	}

	add := func(vm *domain.CellViewModel, ref domain.CellRef, placeholder string) {
		block := r.cellRender.RenderCell(vm, CellOptions{
			Selected:        state.Selected == ref,
			Focused:         state.Focused == ref,
			Editor:          state.Editor,
			Width:           width,
			ShowLineNumbers: state.ShowLineNumbers,
			RenderMarkdown:  state.RenderMarkdown,
			SpinnerFrame:    state.SpinnerFrame,
			Placeholder:     placeholder,
		})
		start := len(lines)
		lines = append(lines, strings.Split(block, "\n")...)
		spans = append(spans, viewport.Span{Ref: ref, Start: start, End: len(lines)})
		// Gap between cells
		lines = append(lines, "")
	}

	for _, vm := range state.Cells {
		add(vm, domain.Ref(vm.Cell.ID), "empty cell")
	}
	if state.EditCell != nil {
		add(state.EditCell, domain.EditCell, "type a command and press alt+enter")
	}
	return lines, spans
}

// Render produces the complete view from the document lines
func (r *Renderer) Render(state ViewState, lines []string) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	// Visible slice of the cell list, padded to the viewport height
	height := state.ViewportHeight
	if height < 1 {
		height = 1
	}
	var visible []string
	for i := state.ViewportOffset; i < len(lines) && len(visible) < height; i++ {
		visible = append(visible, lines[i])
	}
	for len(visible) < height {
		visible = append(visible, "")
	}
	content.WriteString(strings.Join(visible, "\n"))
	content.WriteString("\n")

	content.WriteString(r.renderStatus(state, len(lines)))
	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render(state.HelpModel.ShortHelpView(state.Keys.ShortHelp())))

	finalContent := r.styles.Main.Render(content.String())

	if state.ShowHelp {
		helpContent := r.renderHelpContent(state)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("nbnav")
	mode := r.styles.Mode.Render(state.InputMode)

	right := ""
	if state.RunningCount > 0 {
		frame := spinnerFrames[state.SpinnerFrame%len(spinnerFrames)]
		right = r.styles.StatusRunning.Render(fmt.Sprintf("%s Running %d", frame, state.RunningCount))
	}

	left := logo + "  " + mode
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	paddingWidth := termWidth - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if right == "" || paddingWidth <= 0 {
		if right == "" {
			return left
		}
		return left + "  " + right
	}
	return left + strings.Repeat(" ", paddingWidth) + right
}

func (r *Renderer) renderStatus(state ViewState, total int) string {
	if state.ConfirmPrompt != "" {
		return r.styles.Confirm.Render(state.ConfirmPrompt + " (y/n)")
	}

	position := ""
	if total > state.ViewportHeight && total > 0 {
		end := state.ViewportOffset + state.ViewportHeight
		if end > total {
			end = total
		}
		position = fmt.Sprintf(" [%d-%d/%d]", state.ViewportOffset+1, end, total)
	}

	msg := state.StatusMessage
	style := r.styles.Status
	if strings.HasPrefix(msg, "Error") {
		style = r.styles.StatusError
	}
	return style.Render(msg) + r.styles.Dim.Render(position)
}

// renderHelpContent renders the key reference shown in the help popup
func (r *Renderer) renderHelpContent(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("nbnav help"))
	b.WriteString("\n\n")
	h := state.HelpModel
	h.ShowAll = true
	b.WriteString(h.FullHelpView(state.Keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("Press ? to close, H to open in a pager"))
	return b.String()
}
