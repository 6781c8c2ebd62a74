package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"
)

const writeTimeout = 5 * time.Second

// Client is one open event stream. A client with an empty sessionID only
// receives unscoped events.
type Client struct {
	conn      *websocket.Conn
	sessionID string
	send      chan Message
	logger    *zap.Logger
}

// Hub indexes open streams by dashboard session so a session's events are
// handed only to its own tabs.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*Client]struct{}
	count    int
	logger   *zap.Logger
}

// NewHub returns an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		sessions: make(map[string]map[*Client]struct{}),
		logger:   logger,
	}
}

// Register starts delivering events to c.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	tabs, ok := h.sessions[c.sessionID]
	if !ok {
		tabs = make(map[*Client]struct{})
		h.sessions[c.sessionID] = tabs
	}
	if _, dup := tabs[c]; !dup {
		tabs[c] = struct{}{}
		h.count++
	}
	n := h.count
	h.mu.Unlock()

	connectedClients.Set(float64(n))
	h.logger.Debug("event stream opened", zap.String("session_id", c.sessionID))
}

// Unregister stops delivery to c and closes its queue. Unknown clients are
// ignored.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	tabs := h.sessions[c.sessionID]
	if _, ok := tabs[c]; ok {
		delete(tabs, c)
		if len(tabs) == 0 {
			delete(h.sessions, c.sessionID)
		}
		close(c.send)
		h.count--
	}
	n := h.count
	h.mu.Unlock()

	connectedClients.Set(float64(n))
	h.logger.Debug("event stream closed", zap.String("session_id", c.sessionID))
}

// Broadcast queues msg for its session's clients, or for every client when
// msg is unscoped. A client whose queue is full misses the message.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if msg.SessionID != "" {
		h.offerAll(h.sessions[msg.SessionID], msg)
		return
	}
	for _, tabs := range h.sessions {
		h.offerAll(tabs, msg)
	}
}

// offerAll must be called with h.mu held.
func (h *Hub) offerAll(tabs map[*Client]struct{}, msg Message) {
	for c := range tabs {
		select {
		case c.send <- msg:
		default:
			droppedMessages.Inc()
			h.logger.Warn("event stream queue full, message dropped",
				zap.String("session_id", c.sessionID),
				zap.String("type", msg.Type))
		}
	}
}

// ClientCount returns the number of open streams.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// writePump copies queued messages to the socket until the queue closes,
// ctx ends or a write fails.
func (c *Client) writePump(ctx context.Context) {
	for {
		var (
			msg Message
			ok  bool
		)
		select {
		case <-ctx.Done():
			return
		case msg, ok = <-c.send:
		}
		if !ok {
			return
		}
		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		err := wsjson.Write(wctx, c.conn, msg)
		cancel()
		if err != nil {
			c.logger.Debug("event stream write failed", zap.String("type", msg.Type), zap.Error(err))
			return
		}
	}
}

// readPump drains the connection until the client goes away. Dashboards
// never send anything.
func (c *Client) readPump(ctx context.Context) {
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}
