package tui

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/JackWithOneEye/innerer/internal/protocol"
	"github.com/JackWithOneEye/innerer/internal/retry"
	"github.com/JackWithOneEye/innerer/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/websocket"
)

type wsMessage struct {
	Data []byte
	Err  error
}

type connectionResult struct {
	Conn      *websocket.Conn
	Connected bool
	Err       error
}

func connectToAPI(host string, policy retry.Policy) tea.Cmd {
	return func() tea.Msg {
		u := url.URL{Scheme: "ws", Host: host, Path: "/track"}
		var conn *websocket.Conn
		err := policy.Do(context.Background(), func(attempt int) error {
			c, _, err := websocket.Dial(context.Background(), u.String(), nil)
			if err != nil {
				log.Printf("dial attempt %d failed: %s", attempt, err)
				return err
			}
			conn = c
			return nil
		})
		if err != nil {
			return connectionResult{Err: fmt.Errorf("websocket connection failed: %w", err)}
		}
		return connectionResult{Conn: conn, Connected: true}
	}
}

func listenForMessages(conn *websocket.Conn) tea.Cmd {
	return func() tea.Msg {
		_, data, err := conn.Read(context.Background())
		if err != nil {
			return wsMessage{Err: err}
		}
		return wsMessage{Data: data}
	}
}

// sender writes client messages in the order they were queued.
type sender struct {
	conn   *websocket.Conn
	outbox chan []byte
	done   chan struct{}
}

func newSender(conn *websocket.Conn) *sender {
	s := &sender{conn: conn, outbox: make(chan []byte, 16), done: make(chan struct{})}
	go s.loop()
	return s
}

func (s *sender) loop() {
	for {
		select {
		case <-s.done:
			return
		case b := <-s.outbox:
			err := s.conn.Write(context.Background(), websocket.MessageBinary, b)
			if err != nil {
				log.Printf("Error sending message: %v", err)
			}
		}
	}
}

func (s *sender) enqueue(msg protocol.ClientMessage) {
	select {
	case s.outbox <- msg.Encode():
	default:
		log.Println("outbox full, dropping message")
	}
}

func (s *sender) mount(offset float64) {
	s.enqueue(&protocol.Mount{Offset: offset})
}

func (s *sender) tick(viewportHeight, offset float64, elements []session.Element) {
	s.enqueue(&protocol.Tick{
		ViewportHeight: viewportHeight,
		Offset:         offset,
		Elements:       elements,
	})
}

func (s *sender) close() {
	close(s.done)
	s.conn.Close(websocket.StatusNormalClosure, "")
}

func processServerMessage(data []byte) ([]session.Record, error) {
	var output protocol.Output
	err := output.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode server message: %w", err)
	}
	if output.Error != "" {
		return nil, fmt.Errorf("server rejected tick: %s", output.Error)
	}
	return output.Records, nil
}
