// Package protocol is the wire format between tracking clients and the
// server. Client messages are binary, big-endian; output is JSON.
package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/JackWithOneEye/innerer/internal/session"
)

type clientMessageType uint8

const (
	mount clientMessageType = iota
	tick
	unmount
)

type ClientMessage interface {
	Encode() []byte
	decode([]byte) error
}

func DecodeClientMessage(b []byte) (ClientMessage, error) {
	if len(b) == 0 {
		return nil, errors.New("empty client message")
	}
	var msg ClientMessage
	switch clientMessageType(b[0]) {
	case mount:
		msg = &Mount{}
	case tick:
		msg = &Tick{}
	case unmount:
		msg = &Unmount{}
	default:
		return nil, fmt.Errorf("unknown client message type: %d", b[0])
	}
	err := msg.decode(b)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// Mount starts a session at the given scroll offset.
type Mount struct {
	Offset float64
}

func (m *Mount) Encode() []byte {
	b := make([]byte, 1+bytesPerFloat)
	b[0] = byte(mount)
	putFloat(b[1:], m.Offset)
	return b
}

func (m *Mount) decode(b []byte) error {
	if len(b) < 1+bytesPerFloat {
		return fmt.Errorf("[Mount] %w", errShort)
	}
	m.Offset = getFloat(b[1:])
	return nil
}

// Tick carries one scroll/resize reading.
type Tick struct {
	ViewportHeight float64
	Offset         float64
	Elements       []session.Element
}

const tickHeaderSize = 1 + 2*bytesPerFloat + 2

func (t *Tick) Encode() []byte {
	elements := t.Elements
	if len(elements) > maxElementCount {
		elements = elements[:maxElementCount]
	}
	size := tickHeaderSize
	for _, el := range elements {
		size += elementSize(el)
	}

	b := make([]byte, size)
	b[0] = byte(tick)
	putFloat(b[1:], t.ViewportHeight)
	putFloat(b[1+bytesPerFloat:], t.Offset)
	binary.BigEndian.PutUint16(b[1+2*bytesPerFloat:], uint16(len(elements)))

	i := tickHeaderSize
	for _, el := range elements {
		i += encodeElement(el, b[i:])
	}
	return b
}

func (t *Tick) decode(b []byte) error {
	if len(b) < tickHeaderSize {
		return fmt.Errorf("[Tick] %w", errShort)
	}
	t.ViewportHeight = getFloat(b[1:])
	t.Offset = getFloat(b[1+bytesPerFloat:])
	count := int(binary.BigEndian.Uint16(b[1+2*bytesPerFloat:]))

	t.Elements = make([]session.Element, 0, count)
	i := tickHeaderSize
	for range count {
		el, n, err := decodeElement(b[i:])
		if err != nil {
			return fmt.Errorf("[Tick] element %d: %w", len(t.Elements), err)
		}
		t.Elements = append(t.Elements, el)
		i += n
	}
	return nil
}

// Frame converts t to a session frame.
func (t *Tick) Frame() session.Frame {
	return session.Frame{
		ViewportHeight: t.ViewportHeight,
		ScrollOffset:   t.Offset,
		Elements:       t.Elements,
	}
}

type Unmount struct{}

func (u *Unmount) Encode() []byte {
	return []byte{byte(unmount)}
}

func (u *Unmount) decode([]byte) error {
	return nil
}
