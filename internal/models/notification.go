package models

import "time"

// Notification mirrors the notifications table.
type Notification struct {
	NotificationID int64     `db:"notification_id"`
	RecipientEmail string    `db:"recipient_email"`
	Subject        string    `db:"subject"`
	Message        string    `db:"message"`
	CreatedAt      time.Time `db:"created_at"`
	Sent           bool      `db:"sent"`
	Error          *string   `db:"error"`
}
