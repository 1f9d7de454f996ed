package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nbnav/internal/domain"
)

// promptWidth is the width of the "[12]" column left of each cell
const promptWidth = 6

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// CellOptions describes how a single cell is drawn
type CellOptions struct {
	Selected        bool
	Focused         bool
	Editor          string // rendered editor, used instead of the source when focused
	Width           int
	ShowLineNumbers bool
	RenderMarkdown  bool
	SpinnerFrame    int
	Placeholder     string
}

// CellRenderer handles rendering of notebook cells
type CellRenderer struct {
	styles *Styles
}

// NewCellRenderer creates a new cell renderer
func NewCellRenderer(styles *Styles) *CellRenderer {
	return &CellRenderer{
		styles: styles,
	}
}

// RenderCell renders a cell with its prompt, source and outputs
func (r *CellRenderer) RenderCell(vm *domain.CellViewModel, opts CellOptions) string {
	if vm == nil {
		return ""
	}
	cell := vm.Cell

	bodyWidth := opts.Width - promptWidth - 2
	if bodyWidth < 10 {
		bodyWidth = 10
	}

	var body string
	switch {
	case opts.Focused && opts.Editor != "":
		body = opts.Editor
	case cell.Type == domain.CellTypeMessages:
		body = r.styles.Messages.Render(cell.Source)
	case cell.Type == domain.CellTypeMarkdown && opts.RenderMarkdown && cell.Source != "":
		body = RenderMarkdown(cell.Source, bodyWidth)
	case cell.Source == "":
		body = r.styles.Placeholder.Render(opts.Placeholder)
	default:
		body = r.renderSource(cell.Source, opts.ShowLineNumbers)
	}

	if outputs := r.renderOutputs(cell.Outputs); outputs != "" && !vm.IsEditCell() {
		body = body + "\n" + outputs
	}

	style := r.styles.Cell
	switch {
	case opts.Focused:
		style = r.styles.CellFocused
	case opts.Selected:
		style = r.styles.CellSelected
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderPrompt(vm, opts), style.Render(body))
}

// renderPrompt renders the execution count column
func (r *CellRenderer) renderPrompt(vm *domain.CellViewModel, opts CellOptions) string {
	cell := vm.Cell
	switch {
	case vm.IsEditCell():
		return r.styles.Prompt.Render("In:")
	case cell.Type == domain.CellTypeMarkdown:
		return r.styles.Prompt.Render("md")
	case cell.Type == domain.CellTypeMessages:
		return r.styles.Prompt.Render("")
	case cell.State == domain.CellQueued:
		return r.styles.PromptRunning.Render("[*]")
	case cell.State == domain.CellRunning:
		frame := spinnerFrames[opts.SpinnerFrame%len(spinnerFrames)]
		return r.styles.PromptRunning.Render(fmt.Sprintf("[%s]", frame))
	case cell.ExecutionCount > 0:
		return r.styles.StateStyle(cell.State).Width(promptWidth).Render(fmt.Sprintf("[%d]", cell.ExecutionCount))
	default:
		return r.styles.Prompt.Render("[ ]")
	}
}

func (r *CellRenderer) renderSource(source string, lineNumbers bool) string {
	if !lineNumbers {
		return source
	}
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = r.styles.Dim.Render(fmt.Sprintf("%3d ", i+1)) + line
	}
	return strings.Join(lines, "\n")
}

func (r *CellRenderer) renderOutputs(outputs []domain.Output) string {
	if len(outputs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(outputs))
	for _, out := range outputs {
		if out.IsError {
			parts = append(parts, r.styles.OutputError.Render(out.Text))
		} else {
			parts = append(parts, r.styles.Output.Render(out.Text))
		}
	}
	return strings.Join(parts, "\n")
}

// OutputText joins a cell's outputs as plain text for the pager
func OutputText(cell domain.Cell) string {
	var b strings.Builder
	for i, out := range cell.Outputs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(out.Text)
	}
	return b.String()
}
