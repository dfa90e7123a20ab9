package telemetry

import (
	"fmt"

	"github.com/gorilla/websocket"
)

// Websocket receives JSON telemetry frames pushed by a sim or a bridge
// process, one Frame object per message.
type Websocket struct {
	url  string
	conn *websocket.Conn
}

// NewWebsocket creates a websocket provider for the given ws:// URL.
func NewWebsocket(url string) *Websocket {
	return &Websocket{url: url}
}

func (w *Websocket) Name() string { return fmt.Sprintf("Websocket (%s)", w.url) }

func (w *Websocket) Connect() error {
	conn, _, err := websocket.DefaultDialer.Dial(w.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", w.url, err)
	}
	w.conn = conn
	return nil
}

func (w *Websocket) Close() error {
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

// Poll blocks until the next frame arrives.
func (w *Websocket) Poll() (Frame, error) {
	if w.conn == nil {
		return Frame{}, ErrNotConnected
	}
	var f Frame
	if err := w.conn.ReadJSON(&f); err != nil {
		return Frame{}, fmt.Errorf("read frame: %w", err)
	}
	return f, nil
}
