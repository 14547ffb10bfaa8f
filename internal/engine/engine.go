// Package engine runs one tracking session behind the binary client protocol.
package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/JackWithOneEye/innerer/internal/direction"
	"github.com/JackWithOneEye/innerer/internal/protocol"
	"github.com/JackWithOneEye/innerer/internal/session"
)

type EngineConfig interface {
	CacheSize() int
	InvertDirection() bool
}

type Engine interface {
	Close()
	Output() <-chan []byte
	SubmitMessage(b []byte) error
}

var ErrClosed = errors.New("engine closed")

const outputBuffer = 4

type engine struct {
	session    *session.Session
	mutex      sync.Mutex
	closed     bool
	records    []session.Record
	outputChan chan []byte
}

func NewEngine(cfg EngineConfig) Engine {
	convention := direction.DefaultConvention
	if cfg.InvertDirection() {
		convention = direction.OffsetIncreaseIsUp
	}
	return &engine{
		session: session.New(
			session.WithConvention(convention),
			session.WithCacheSize(cfg.CacheSize()),
		),
		outputChan: make(chan []byte, outputBuffer),
	}
}

func (e *engine) Output() <-chan []byte {
	return e.outputChan
}

func (e *engine) Close() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.session.Unmount()
	close(e.outputChan)
}

func (e *engine) SubmitMessage(b []byte) error {
	msg, err := protocol.DecodeClientMessage(b)
	if err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()
	if e.closed {
		return ErrClosed
	}

	switch t := msg.(type) {
	case *protocol.Mount:
		e.session.Mount(t.Offset)
	case *protocol.Unmount:
		e.session.Unmount()
	case *protocol.Tick:
		err = e.handleTick(t)
	}
	if err != nil {
		return fmt.Errorf("handle message error: %w", err)
	}
	return nil
}

func (e *engine) handleTick(t *protocol.Tick) error {
	e.records = e.records[:0]
	err := e.session.Tick(t.Frame(), func(r session.Record) {
		e.records = append(e.records, r)
	})
	if err != nil {
		return err
	}

	o := protocol.Output{Records: e.records}
	out, err := o.Encode()
	if err != nil {
		return err
	}

	select {
	case e.outputChan <- out:
	default:
		log.Printf("output dropped: client too slow (%d records)", len(e.records))
	}
	return nil
}
