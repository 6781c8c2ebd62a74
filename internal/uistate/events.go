package uistate

// Event topics published by the state module. Slice topics follow
// state.<slice>.changed and fire once per successful mutation.
const (
	TopicSessionCreated       = "state.session.created"
	TopicSessionEvicted       = "state.session.evicted"
	TopicSelectionChanged     = "state.selection.changed"
	TopicViewChanged          = "state.view.changed"
	TopicDrilldownChanged     = "state.drilldown.changed"
	TopicJobRunsChanged       = "state.job_runs.changed"
	TopicNotificationsChanged = "state.notifications.changed"
)

// ChangedEvent is the payload of every state topic. Value holds the new
// value of the slice that changed. Revision is the session revision the
// value belongs to; a subscriber that already saw a higher one can drop it.
type ChangedEvent struct {
	SessionID string `json:"session_id"`
	Revision  uint64 `json:"revision"`
	Slice     string `json:"slice"`
	Value     any    `json:"value,omitempty"`
}

// EventSession scopes the event to one dashboard session.
func (e ChangedEvent) EventSession() string { return e.SessionID }
