package tui

import (
	"testing"
	"time"

	"github.com/JackWithOneEye/innerer/internal/direction"
	"github.com/JackWithOneEye/innerer/internal/geometry"
	"github.com/JackWithOneEye/innerer/internal/protocol"
	"github.com/JackWithOneEye/innerer/internal/retry"
	"github.com/JackWithOneEye/innerer/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageLayout(t *testing.T) {
	p := newPage([]string{"a", "b"}, []float64{10, 4})
	require.Len(t, p.blocks, 2)
	assert.Equal(t, block{tag: "a", top: blockGap, height: 10}, p.blocks[0])
	assert.Equal(t, block{tag: "b", top: 2*blockGap + 10, height: 4}, p.blocks[1])
	assert.Equal(t, float64(3*blockGap+14), p.height)

	assert.Equal(t, -1, p.blockAt(0))
	assert.Equal(t, 0, p.blockAt(blockGap))
	assert.Equal(t, -1, p.blockAt(blockGap+10))
	assert.Equal(t, 1, p.blockAt(2*blockGap+12))

	assert.Equal(t, p.height-10, p.maxOffset(10))
	assert.Equal(t, 0.0, p.maxOffset(1000))
}

func TestPageElements(t *testing.T) {
	p := newPage([]string{"a"}, []float64{10})
	els := p.elements(4, 20)
	require.Len(t, els, 1)
	assert.Equal(t, "a", els[0].Tag)
	assert.Equal(t, geometry.NewRect(0, blockGap-4, 20, 10), els[0].Rect)
}

func TestProcessServerMessage(t *testing.T) {
	b, err := (&protocol.Output{Records: []session.Record{{Tag: "a", Direction: direction.Up}}}).Encode()
	require.NoError(t, err)
	recs, err := processServerMessage(b)
	require.NoError(t, err)
	assert.Equal(t, direction.Up, recs[0].Direction)

	b, err = (&protocol.Output{Error: "session not mounted"}).Encode()
	require.NoError(t, err)
	_, err = processServerMessage(b)
	assert.ErrorContains(t, err, "not mounted")

	_, err = processServerMessage([]byte("{"))
	assert.Error(t, err)
}

func TestPlaygroundScrollClamps(t *testing.T) {
	m := newPlaygroundModel("localhost:0", retry.Policy{Attempts: 1, Interval: time.Millisecond})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 24})
	assert.Equal(t, 20, m.viewportHeight)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0.0, m.offset)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1.0, m.offset)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Equal(t, m.page.maxOffset(20), m.offset)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0.0, m.offset)
}

func TestPlaygroundAppliesRecords(t *testing.T) {
	m := newPlaygroundModel("localhost:0", retry.Policy{Attempts: 1})
	b, err := (&protocol.Output{Records: []session.Record{{
		Tag:       "hero",
		Direction: direction.Down,
		Viewport:  geometry.ViewportResult{Status: geometry.StatusEntered},
	}}}).Encode()
	require.NoError(t, err)

	m.Update(wsMessage{Data: b})
	assert.Equal(t, geometry.StatusEntered, m.statuses["hero"])
	assert.Equal(t, direction.Down, m.direction)
	assert.Contains(t, m.View(), "hero")
}

func TestUIModelHelpToggle(t *testing.T) {
	m := NewUIModel(testConfig{})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.helpVisible)
	assert.Contains(t, m.View(), "Keys")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.helpVisible)
}

type testConfig struct{}

func (testConfig) APIHost() string              { return "localhost:0" }
func (testConfig) RetryAttempts() int           { return 1 }
func (testConfig) RetryInterval() time.Duration { return time.Millisecond }
