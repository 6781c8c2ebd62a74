package alerts

// Event topics published by the alerts module.
const (
	TopicRuleCreated   = "alerts.rule.created"
	TopicRuleUpdated   = "alerts.rule.updated"
	TopicRuleDeleted   = "alerts.rule.deleted"
	TopicTriggeredRead = "alerts.triggered.read"
)

// RuleDeletedEvent is the payload of TopicRuleDeleted.
type RuleDeletedEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TriggeredReadEvent is the payload of TopicTriggeredRead. IDs lists the
// alerts that changed from unread to read.
type TriggeredReadEvent struct {
	IDs    []string `json:"ids"`
	Unread int      `json:"unread"`
}
