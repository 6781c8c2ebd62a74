package ws

import "time"

// Streamed topic prefixes. Anything else on the bus stays server-side.
var streamedPrefixes = []string{"state.", "alerts.", "workbench."}

// Message is the envelope for all WebSocket messages. Type is the bus
// topic; SessionID is empty for events every dashboard receives.
type Message struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// sessionScoped is implemented by event payloads that belong to a single
// dashboard session.
type sessionScoped interface {
	EventSession() string
}
