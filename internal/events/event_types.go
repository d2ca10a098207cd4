package events

import "time"

// EventType identifies a domain event.
type EventType string

const (
	EventTicketCreated        EventType = "ticket.created"
	EventTicketUpdated        EventType = "ticket.updated"
	EventChatStarted          EventType = "chat.started"
	EventChatClosed           EventType = "chat.closed"
	EventEscalationRaised     EventType = "escalation.raised"
	EventCommunicationCreated EventType = "communication.created"
)

// Event is published after a successful write.
type Event struct {
	ID        string
	Type      EventType
	TenantID  string
	EntityID  string
	UserID    string
	Timestamp time.Time
	Payload   any
}
