package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of a greyed out copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	// Render the popup with its style without forcing width/height, keep it tight
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if width <= 0 || height <= 0 {
		return styledPopup
	}
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	popupLines := strings.Split(styledPopup, "\n")
	for i, line := range popupLines {
		row := y + i
		if row >= len(base) {
			break
		}
		base[row] = spliceLine(base[row], line, x, modalW)
	}
	return strings.Join(base, "\n")
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansi.Strip(s)
	lines := strings.Split(plain, "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = gray.Render(line)
	}
	return strings.Join(lines, "\n")
}

// spliceLine replaces the columns [x, x+w) of a base line with overlay
func spliceLine(base, overlay string, x, w int) string {
	// Columns, not runes: wide characters take two cells
	plain := runewidth.FillRight(ansi.Strip(base), x+w)
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	left := gray.Render(runewidth.FillRight(runewidth.Truncate(plain, x, ""), x))
	right := gray.Render(strings.TrimRight(runewidth.TruncateLeft(plain, x+w, ""), " "))
	pad := w - lipgloss.Width(overlay)
	if pad < 0 {
		pad = 0
	}
	return left + overlay + strings.Repeat(" ", pad) + right
}
