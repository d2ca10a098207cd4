package domain

import "time"

// ActivityAction names the events surfaced by the recent-activities feed.
type ActivityAction string

const (
	ActionTicketCreated        ActivityAction = "ticket_created"
	ActionTicketUpdated        ActivityAction = "ticket_updated"
	ActionChatStarted          ActivityAction = "chat_started"
	ActionChatClosed           ActivityAction = "chat_closed"
	ActionEscalationRaised     ActivityAction = "escalation_raised"
	ActionCommunicationCreated ActivityAction = "communication_created"
)

// ActivityEvent is the tagged variant shared by every feed branch. EntityType
// is the discriminant (ticket, chat, escalation, communication).
type ActivityEvent struct {
	Action     ActivityAction `json:"action"`
	ID         string         `json:"id"`
	TenantID   string         `json:"tenant_id"`
	UserID     *string        `json:"user_id"`
	CreatedAt  time.Time      `json:"created_at"`
	EntityType string         `json:"entity_type"`
	Title      string         `json:"title"`
}

// ActivityUser is the resolved actor attached to a feed entry.
type ActivityUser struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// Activity is a feed entry with its resolved user, or nil when the user no
// longer exists.
type Activity struct {
	ActivityEvent
	User *ActivityUser `json:"user"`
}

// ActivityDetail is the reconstructed history of a single record.
type ActivityDetail struct {
	ID         string           `json:"id"`
	TenantID   string           `json:"tenant_id"`
	UserID     *string          `json:"user_id"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  *time.Time       `json:"updated_at,omitempty"`
	ClosedAt   *time.Time       `json:"closed_at,omitempty"`
	EntityType string           `json:"entity_type"`
	Title      string           `json:"title"`
	Actions    []ActivityAction `json:"actions"`
	User       *ActivityUser    `json:"user"`
}
