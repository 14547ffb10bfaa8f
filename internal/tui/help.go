package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var helpLines = [][2]string{
	{"j / k, ↓ / ↑", "scroll one row"},
	{"d / u, PgDn / PgUp", "scroll half a viewport"},
	{"g / G", "jump to top / bottom"},
	{"wheel", "scroll three rows"},
	{"r", "reconnect"},
	{"esc, ?", "close help"},
	{"q, ctrl+c", "quit"},
}

type helpModel struct{}

func (h *helpModel) Init() tea.Cmd {
	return nil
}

func (h *helpModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return h, nil
}

func (h *helpModel) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Keys"))
	s.WriteString("\n\n")
	keyStyle := lipgloss.NewStyle().Width(20).Bold(true)
	for _, l := range helpLines {
		s.WriteString(keyStyle.Render(l[0]))
		s.WriteString(l[1])
		s.WriteString("\n")
	}
	s.WriteString("\nBlocks are coloured by viewport status:\n")
	s.WriteString(blockStyle("entered").Render(" entered "))
	s.WriteString(" ")
	s.WriteString(blockStyle("bottom-entering").Render(" entering "))
	s.WriteString(" ")
	s.WriteString(blockStyle("bottom-leaving").Render(" leaving "))
	s.WriteString(" ")
	s.WriteString(blockStyle("bottom-outer-process").Render(" outer-process "))
	s.WriteString(" ")
	s.WriteString(blockStyle("bottom-outer").Render(" outer "))
	return modalStyle.Render(s.String())
}
