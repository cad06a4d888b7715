package domain

import "time"

// Notification is an append-only audit record of an attempted outbound
// message. Dispatch failures end up here instead of propagating to the
// domain operation that triggered the send.
type Notification struct {
	NotificationID int64     `json:"id"`
	RecipientEmail string    `json:"recipientEmail"`
	Subject        string    `json:"subject"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
	Sent           bool      `json:"sent"`
	Error          *string   `json:"error,omitempty"`
}
