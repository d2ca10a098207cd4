package domain

import "time"

// Recording stores the location of a captured chat session. One recording is
// allowed per (ticket, chat) pair.
type Recording struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	TicketID  string    `json:"ticket_id"`
	ChatID    string    `json:"chat_id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
