// Package tui is a terminal playground that scrolls a virtual page and shows
// the tracking records the server computes for it.
package tui

import (
	"time"

	"github.com/JackWithOneEye/innerer/internal/retry"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

type quitMessage struct{}

type TUIConfig interface {
	APIHost() string
	RetryAttempts() int
	RetryInterval() time.Duration
}

type UIModel struct {
	playground  tea.Model
	help        tea.Model
	overlay     tea.Model
	helpVisible bool
}

func NewUIModel(cfg TUIConfig) *UIModel {
	m := &UIModel{
		playground: newPlaygroundModel(cfg.APIHost(), retry.Policy{
			Attempts: cfg.RetryAttempts(),
			Interval: cfg.RetryInterval(),
		}),
		help: &helpModel{},
	}
	m.overlay = overlay.New(m.help, m.playground, overlay.Center, overlay.Center, 0, 0)
	return m
}

func (m *UIModel) Init() tea.Cmd {
	return tea.Batch(m.playground.Init(), m.help.Init(), m.overlay.Init())
}

func (m *UIModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.playground.Update(quitMessage{})
			return m, tea.Quit
		case "?":
			m.helpVisible = !m.helpVisible
			return m, nil
		case "esc":
			m.helpVisible = false
			return m, nil
		}
		if m.helpVisible {
			return m, nil
		}
	case tea.MouseMsg:
		if m.helpVisible {
			return m, nil
		}
	}

	pm, cmd := m.playground.Update(message)
	m.playground = pm
	return m, cmd
}

func (m *UIModel) View() string {
	if m.helpVisible {
		return m.overlay.View()
	}
	return m.playground.View()
}
