package tui

import (
	"fmt"
	"strings"

	"github.com/JackWithOneEye/innerer/internal/direction"
	"github.com/JackWithOneEye/innerer/internal/geometry"
	"github.com/JackWithOneEye/innerer/internal/retry"
	"github.com/JackWithOneEye/innerer/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	viewportWidth = 28
	wheelStep     = 3
	// header, error line and the frame borders
	chromeHeight = 4
)

type playgroundModel struct {
	page           page
	offset         float64
	viewportHeight int
	termWidth      int

	apiHost    string
	policy     retry.Policy
	out        *sender
	connected  bool
	connecting bool
	err        error

	records   []session.Record
	statuses  map[string]geometry.Status
	direction direction.Direction
	spinner   spinner.Model
}

func newPlaygroundModel(apiHost string, policy retry.Policy) *playgroundModel {
	return &playgroundModel{
		page:           defaultPage(),
		viewportHeight: 20,
		termWidth:      100,
		apiHost:        apiHost,
		policy:         policy,
		statuses:       make(map[string]geometry.Status),
		spinner:        spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205")))),
	}
}

func (m *playgroundModel) Init() tea.Cmd {
	m.connecting = true
	return tea.Batch(connectToAPI(m.apiHost, m.policy), m.spinner.Tick)
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		half := float64(max(1, m.viewportHeight/2))
		switch msg.String() {
		case "j", "down":
			m.scrollTo(m.offset + 1)
		case "k", "up":
			m.scrollTo(m.offset - 1)
		case "d", "pgdown", " ":
			m.scrollTo(m.offset + half)
		case "u", "pgup":
			m.scrollTo(m.offset - half)
		case "g", "home":
			m.scrollTo(0)
		case "G", "end":
			m.scrollTo(m.page.maxOffset(float64(m.viewportHeight)))
		case "r":
			if !m.connected && !m.connecting {
				m.err = nil
				return m, m.Init()
			}
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.scrollTo(m.offset + wheelStep)
		case tea.MouseButtonWheelUp:
			m.scrollTo(m.offset - wheelStep)
		}
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		if msg.Height > chromeHeight+1 {
			m.viewportHeight = msg.Height - chromeHeight
		}
		m.offset = min(m.offset, m.page.maxOffset(float64(m.viewportHeight)))
		// resize is a tick too
		m.pushTick()
	case quitMessage:
		if m.out != nil {
			m.out.close()
			m.out = nil
		}
		m.connected = false
	case connectionResult:
		m.connecting = false
		m.connected = msg.Connected
		m.err = msg.Err
		if m.connected {
			m.out = newSender(msg.Conn)
			m.out.mount(m.offset)
			m.pushTick()
			return m, listenForMessages(msg.Conn)
		}
	case wsMessage:
		if msg.Err != nil {
			m.err = msg.Err
			m.connected = false
			if m.out != nil {
				m.out.close()
				m.out = nil
			}
			return m, nil
		}
		m.applyRecords(msg.Data)
		if m.out != nil {
			return m, listenForMessages(m.out.conn)
		}
	case spinner.TickMsg:
		if m.connecting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *playgroundModel) scrollTo(offset float64) {
	offset = max(0, min(offset, m.page.maxOffset(float64(m.viewportHeight))))
	if offset == m.offset {
		return
	}
	m.offset = offset
	m.pushTick()
}

func (m *playgroundModel) pushTick() {
	if m.out == nil {
		return
	}
	m.out.tick(float64(m.viewportHeight), m.offset, m.page.elements(m.offset, viewportWidth))
}

func (m *playgroundModel) applyRecords(data []byte) {
	records, err := processServerMessage(data)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.records = records
	for _, r := range records {
		m.statuses[r.Tag] = r.Viewport.Status
		m.direction = r.Direction
	}
}

func (m *playgroundModel) View() string {
	var s strings.Builder

	title := titleStyle.Render("innerer playground")
	if m.connecting {
		title += " " + m.spinner.View()
	}
	status := statusStyle.Render(fmt.Sprintf(" %s • offset %.0f/%.0f • viewport %d • %s • [?] help",
		connectedStatus(m.connected),
		m.offset, m.page.maxOffset(float64(m.viewportHeight)),
		m.viewportHeight,
		m.direction))
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, title, status))
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	s.WriteString("\n")

	viewport := frameStyle.Render(m.renderViewport())
	table := frameStyle.Render(m.renderRecords())
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, viewport, " ", table))
	return s.String()
}

func (m *playgroundModel) renderViewport() string {
	rows := make([]string, m.viewportHeight)
	center := m.viewportHeight / 2
	for r := range rows {
		y := m.offset + float64(r)
		idx := m.page.blockAt(y)
		if idx < 0 {
			if r == center {
				rows[r] = centerLineStyle.Render(strings.Repeat("╌", viewportWidth))
			} else {
				rows[r] = emptyRowStyle.Render(strings.Repeat(" ", viewportWidth))
			}
			continue
		}
		b := m.page.blocks[idx]
		label := ""
		if y == b.top || r == 0 {
			label = " " + b.tag
		}
		if r == center {
			label = strings.TrimRight(label, " ") + " ◂"
		}
		rows[r] = blockStyle(m.statuses[b.tag]).Width(viewportWidth).Render(truncate(label, viewportWidth))
	}
	return strings.Join(rows, "\n")
}

func (m *playgroundModel) renderRecords() string {
	lines := []string{headerCellStyle.Render(fmt.Sprintf("%-10s %-20s %6s %6s %6s %-12s %6s",
		"tag", "status", "trans", "pos", "out", "centered", "%"))}
	for _, r := range m.records {
		lines = append(lines, fmt.Sprintf("%-10s %-20s %6.2f %6.2f %6.2f %-12s %6.2f",
			truncate(r.Tag, 10),
			r.Viewport.Status,
			r.Viewport.PercentageInTransition,
			r.Viewport.PercentageInPosition,
			r.Viewport.PercentageOutside,
			r.Centered.Status,
			r.Centered.Percentage))
	}
	for len(lines) < m.viewportHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines[:max(m.viewportHeight, 1)], "\n")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
