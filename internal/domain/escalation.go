package domain

import "time"

// Escalation is a one-time elevation flag raised on a ticket by staff.
type Escalation struct {
	ID             string    `json:"id"`
	TicketID       string    `json:"ticket_id"`
	RaisedByUserID string    `json:"raised_by_user_id"`
	TypeID         string    `json:"type_id"`
	Reason         *string   `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}
