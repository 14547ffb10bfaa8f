// Package direction derives the vertical scroll direction from successive
// scroll offsets.
package direction

import (
	"errors"
	"fmt"
	"sync"
)

type Direction uint8

const (
	Stop Direction = iota
	Up
	Down
)

var names = [...]string{
	Stop: "stop",
	Up:   "up",
	Down: "down",
}

func (d Direction) String() string {
	if int(d) < len(names) {
		return names[d]
	}
	return fmt.Sprintf("direction(%d)", d)
}

func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= len(names) {
		return nil, fmt.Errorf("unknown direction: %d", d)
	}
	return []byte(names[d]), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	p, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = p
	return nil
}

// Parse maps "up", "down" or "stop" to a Direction.
func Parse(s string) (Direction, error) {
	for i, n := range names {
		if n == s {
			return Direction(i), nil
		}
	}
	return Stop, fmt.Errorf("unknown direction: %q", s)
}

// Convention decides which direction a growing scroll offset means.
type Convention uint8

const (
	// OffsetIncreaseIsDown: the page moves up the screen, the reader scrolls down.
	OffsetIncreaseIsDown Convention = iota
	// OffsetIncreaseIsUp is the inverted mapping.
	OffsetIncreaseIsUp
)

const DefaultConvention = OffsetIncreaseIsDown

// FromDelta maps an offset delta to a Direction under c.
func (c Convention) FromDelta(delta float64) Direction {
	switch {
	case delta > 0:
		if c == OffsetIncreaseIsUp {
			return Up
		}
		return Down
	case delta == 0:
		return Stop
	case delta < 0:
		if c == OffsetIncreaseIsUp {
			return Down
		}
		return Up
	}
	// NaN
	return Stop
}

var ErrNotInitialized = errors.New("direction tracker not initialized")

// Tracker keeps the previous scroll offset. Init must be called with the
// first reading before Advance.
type Tracker struct {
	mu          sync.Mutex
	convention  Convention
	previous    float64
	initialized bool
}

func NewTracker(c Convention) *Tracker {
	return &Tracker{convention: c}
}

func (t *Tracker) Init(offset float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.previous = offset
	t.initialized = true
}

func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.previous = 0
	t.initialized = false
}

func (t *Tracker) Initialized() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initialized
}

// Advance compares offset with the stored one, then stores offset.
func (t *Tracker) Advance(offset float64) (Direction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.initialized {
		return Stop, ErrNotInitialized
	}
	d := t.convention.FromDelta(offset - t.previous)
	t.previous = offset
	return d, nil
}

func (t *Tracker) Previous() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.previous
}
