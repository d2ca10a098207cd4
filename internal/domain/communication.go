package domain

import "time"

// CommunicationType enumerates outbound contact channels.
type CommunicationType string

const (
	CommunicationTypeEmail CommunicationType = "email"
	CommunicationTypeSMS   CommunicationType = "sms"
	CommunicationTypeCall  CommunicationType = "call"
	CommunicationTypePush  CommunicationType = "push"
)

// Valid reports whether the type is one of the known channels.
func (t CommunicationType) Valid() bool {
	switch t {
	case CommunicationTypeEmail, CommunicationTypeSMS, CommunicationTypeCall, CommunicationTypePush:
		return true
	}
	return false
}

// Communication logs an outbound contact event tied to a ticket.
type Communication struct {
	ID        string            `json:"id"`
	TenantID  string            `json:"tenant_id"`
	TicketID  string            `json:"ticket_id"`
	ChatID    *string           `json:"chat_id"`
	Type      CommunicationType `json:"type"`
	UserID    string            `json:"user_id"`
	Summary   *string           `json:"summary"`
	CreatedAt time.Time         `json:"created_at"`
}
