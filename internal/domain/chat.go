package domain

import "time"

// Chat is a live conversation attached to a ticket. At most one chat exists
// per ticket.
type Chat struct {
	ID              string     `json:"id"`
	TenantID        string     `json:"tenant_id"`
	TicketID        string     `json:"ticket_id"`
	StartedByUserID string     `json:"started_by_user_id"`
	AssignedAgentID *string    `json:"assigned_agent_id"`
	CreatedAt       time.Time  `json:"created_at"`
	ClosedAt        *time.Time `json:"closed_at"`
}

// Closed reports whether the chat no longer accepts messages or recordings.
func (c *Chat) Closed() bool {
	return c.ClosedAt != nil
}

// ChatMessage is a single message inside a chat.
type ChatMessage struct {
	ID       string    `json:"id"`
	ChatID   string    `json:"chat_id"`
	SenderID string    `json:"sender_id"`
	Message  string    `json:"message"`
	SentAt   time.Time `json:"sent_at"`
}
