package tui

import (
	"github.com/JackWithOneEye/innerer/internal/geometry"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	borderColor   = lipgloss.Color("240")
	titleFg       = lipgloss.Color("#ffffff")
	statusFg      = lipgloss.Color("#cccccc")
	emptyRowFg    = lipgloss.Color("#444")
	centerLineFg  = lipgloss.Color("#888")
	errorFg       = lipgloss.Color("#ff6b6b")
	successFg     = lipgloss.Color("#51cf66")
	modalBorderFg = lipgloss.Color("62")
	modalBg       = lipgloss.Color("235")
	modalFg       = lipgloss.Color("252")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(titleFg).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(statusFg)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorFg).
			Bold(true)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(modalBorderFg).
			Background(modalBg).
			Foreground(modalFg).
			Padding(1, 2)

	emptyRowStyle = lipgloss.NewStyle().
			Foreground(emptyRowFg)

	centerLineStyle = lipgloss.NewStyle().
			Foreground(centerLineFg)

	headerCellStyle = lipgloss.NewStyle().
			Foreground(titleFg).
			Bold(true).
			Underline(true)
)

var statusColors = map[geometry.Status]lipgloss.Color{
	geometry.StatusBottomOuter:        lipgloss.Color("#3a3a3a"),
	geometry.StatusTopOuter:           lipgloss.Color("#3a3a3a"),
	geometry.StatusBottomOuterProcess: lipgloss.Color("#5c4b8a"),
	geometry.StatusTopOuterProcess:    lipgloss.Color("#5c4b8a"),
	geometry.StatusBottomEntering:     lipgloss.Color("#1f6feb"),
	geometry.StatusTopEntering:        lipgloss.Color("#1f6feb"),
	geometry.StatusBottomLeaving:      lipgloss.Color("#d29922"),
	geometry.StatusTopLeaving:         lipgloss.Color("#d29922"),
	geometry.StatusEntered:            lipgloss.Color("#2ea043"),
	geometry.StatusUndetermined:       lipgloss.Color("#da3633"),
}

// blockStyle returns the fill style for a block in the given status.
func blockStyle(s geometry.Status) lipgloss.Style {
	bg, ok := statusColors[s]
	if !ok {
		bg = lipgloss.Color("#30363d")
	}
	return lipgloss.NewStyle().Background(bg).Foreground(titleFg)
}

func connectedStatus(connected bool) string {
	if connected {
		return lipgloss.NewStyle().Foreground(successFg).Render("● connected")
	}
	return lipgloss.NewStyle().Foreground(errorFg).Render("● offline")
}
