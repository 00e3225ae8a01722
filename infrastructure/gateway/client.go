package gateway

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 << 10
)

var _ contract.Session = (*Client)(nil)

// Client is one websocket connection bound to a player.
type Client struct {
	guid chat.GUID
	conn *websocket.Conn
	log  *slog.Logger
	send chan []byte
	done chan struct{}
	once sync.Once
}

func NewClient(guid chat.GUID, conn *websocket.Conn, log *slog.Logger, bufferSize int) *Client {
	if bufferSize < 1 {
		bufferSize = 256
	}
	return &Client{
		guid: guid,
		conn: conn,
		log:  log,
		send: make(chan []byte, bufferSize),
		done: make(chan struct{}),
	}
}

// Send queues a payload. It never blocks: a full buffer drops the payload.
func (c *Client) Send(_ context.Context, payload []byte) error {
	select {
	case <-c.done:
		return errors.ErrSessionClosed
	default:
	}
	select {
	case c.send <- payload:
		return nil
	default:
		return fmt.Errorf("send buffer of %d full", c.guid)
	}
}

// Close stops the write pump, which closes the connection.
func (c *Client) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

// ReadPump hands every inbound frame to onFrame until the connection drops.
func (c *Client) ReadPump(onFrame func(raw []byte)) {
	defer func() {
		_ = c.Close()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Info("Client disconnected", "guid", c.guid, "error", err)
			}
			return
		}
		onFrame(message)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
