package views

import (
	"github.com/charmbracelet/lipgloss"

	"nbnav/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Mode          lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Prompt        lipgloss.Style
	PromptRunning lipgloss.Style
	Cell          lipgloss.Style
	CellSelected  lipgloss.Style
	CellFocused   lipgloss.Style
	Output        lipgloss.Style
	OutputError   lipgloss.Style
	Messages      lipgloss.Style
	Placeholder   lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusRunning lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	// Cells keep a left border in every state so content does not shift
	// when the selection moves.
	cell := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("236")).
		PaddingLeft(1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Confirm: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Mode:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Width(promptWidth),
		PromptRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Width(promptWidth),
		Cell:          cell,
		CellSelected:  cell.BorderForeground(lipgloss.Color("39")),
		CellFocused:   cell.BorderForeground(lipgloss.Color("78")),
		Output:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OutputError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Messages:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}

// StateStyle returns the style for a cell's execution state marker
func (s *Styles) StateStyle(state domain.CellState) lipgloss.Style {
	switch state {
	case domain.CellQueued, domain.CellRunning:
		return s.StatusRunning
	case domain.CellError:
		return s.StatusError
	case domain.CellFinished:
		return s.StatusSuccess
	default:
		return s.Dim
	}
}
