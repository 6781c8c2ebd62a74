// Package ws streams bus events to connected dashboards.
package ws

import (
	"context"
	"net/http"
	"strings"

	"github.com/HerbHall/olympushub/pkg/plugin"
	"github.com/coder/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	connectedClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "olympushub_ws_clients",
		Help: "Number of connected event stream clients.",
	})
	droppedMessages = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "olympushub_ws_dropped_messages_total",
		Help: "Messages dropped because a client fell behind.",
	})
)

func init() {
	prometheus.MustRegister(connectedClients, droppedMessages)
}

// sendBuffer is the per-client queue depth before messages are dropped.
const sendBuffer = 256

// Handler provides the dashboard event stream.
type Handler struct {
	hub    *Hub
	logger *zap.Logger
	unsub  func()
}

// Compile-time check that Handler implements the server interface.
var _ interface {
	RegisterRoutes(mux *http.ServeMux)
} = (*Handler)(nil)

// NewHandler creates a WebSocket handler fed by every streamed topic on bus.
func NewHandler(bus plugin.EventBus, logger *zap.Logger) *Handler {
	h := &Handler{
		hub:    NewHub(logger),
		logger: logger,
	}
	if bus != nil {
		h.unsub = bus.SubscribeAll(h.forward)
		logger.Info("websocket stream subscribed to bus", zap.Strings("prefixes", streamedPrefixes))
	}
	return h
}

// Close detaches the handler from the bus.
func (h *Handler) Close() {
	if h.unsub != nil {
		h.unsub()
	}
}

// RegisterRoutes registers WebSocket routes on the server mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/ws/events", h.handleEventStream)
}

// handleEventStream upgrades the connection and streams events. The
// session query parameter scopes state events to one dashboard; without
// it the client only receives alert and workbench events.
//
//	@Summary		Dashboard event stream
//	@Description	WebSocket stream of state changes for the session plus all alert and workbench events.
//	@Tags			realtime
//	@Param			session query string false "Dashboard session"
//	@Success		101
//	@Router			/ws/events [get]
func (h *Handler) handleEventStream(w http.ResponseWriter, r *http.Request) {
	// Browsers cannot set headers on a WebSocket handshake, so the query
	// parameter is the primary carrier here.
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = r.Header.Get("X-Session-ID")
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Error("websocket accept failed", zap.Error(err))
		return
	}

	client := &Client{
		conn:      conn,
		sessionID: sessionID,
		send:      make(chan Message, sendBuffer),
		logger:    h.logger,
	}
	h.hub.Register(client)

	ctx, cancel := context.WithCancel(r.Context())
	done := make(chan struct{})
	go func() {
		client.writePump(ctx)
		cancel()
		close(done)
	}()

	client.readPump(ctx)

	cancel()
	h.hub.Unregister(client)
	conn.Close(websocket.StatusNormalClosure, "")
	<-done
}

// forward turns a bus event into a stream message.
func (h *Handler) forward(_ context.Context, event plugin.Event) {
	if !streamed(event.Topic) {
		return
	}
	msg := Message{
		Type:      event.Topic,
		Timestamp: event.Timestamp,
		Data:      event.Payload,
	}
	if scoped, ok := event.Payload.(sessionScoped); ok {
		msg.SessionID = scoped.EventSession()
		if msg.SessionID == "" {
			return
		}
	}
	h.hub.Broadcast(msg)
}

func streamed(topic string) bool {
	for _, p := range streamedPrefixes {
		if strings.HasPrefix(topic, p) {
			return true
		}
	}
	return false
}
