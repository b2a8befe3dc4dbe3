package ws

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client wraps a websocket connection. Writes are serialized with a mutex
// because private replies come from the read goroutine while broadcasts
// come from the hub goroutine.
type Client struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	logger *zap.SugaredLogger
}

// NewClient constructs a client wrapper around an upgraded connection.
func NewClient(conn *websocket.Conn, logger *zap.SugaredLogger) *Client {
	return &Client{conn: conn, logger: logger}
}

// Send writes a text message to the connection. On write failure the
// connection is closed and the error returned so the hub can evict it.
func (c *Client) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.logger.Warnw("websocket send failed", "error", err)
		_ = c.conn.Close()
		return err
	}
	return nil
}

// Close terminates the connection.
func (c *Client) Close() {
	_ = c.conn.Close()
}
