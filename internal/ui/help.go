package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// errNoProgram is returned when the pager is opened before the program is set
var errNoProgram = errors.New("program not set")

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}

// helpSection is a titled group of key bindings
type helpSection struct {
	title    string
	bindings []key.Binding
}

// helpSections groups the key bindings for the help page
func helpSections(keys keyHelp) []helpSection {
	titles := []string{"Navigation", "Cells", "Clipboard & Output", "Other"}
	full := keys.FullHelp()
	sections := make([]helpSection, 0, len(full))
	for i, group := range full {
		title := "More"
		if i < len(titles) {
			title = titles[i]
		}
		sections = append(sections, helpSection{title: title, bindings: group})
	}
	return sections
}

// keyHelp is the part of the key map the help page needs
type keyHelp interface {
	FullHelp() [][]key.Binding
}

// RenderHelpContent generates help content with colors for the pager
func RenderHelpContent(keys keyHelp) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("nbnav help"))
	help.WriteString("\n")

	for _, section := range helpSections(keys) {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			if h.Key == "" {
				continue
			}
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Arrow keys leave a cell editor only from its first or last line."))
	return help.String()
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages content using the ov pager
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
