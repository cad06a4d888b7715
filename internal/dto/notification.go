package dto

import (
	"time"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// NotificationResponse is the outward representation of a notification log entry.
type NotificationResponse struct {
	ID             int64     `json:"id"`
	RecipientEmail string    `json:"recipientEmail"`
	Subject        string    `json:"subject"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
	Sent           bool      `json:"sent"`
	Error          string    `json:"error,omitempty"`
}

// ToNotificationResponse converts a domain.Notification to its response DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:             n.NotificationID,
		RecipientEmail: n.RecipientEmail,
		Subject:        n.Subject,
		Message:        n.Message,
		CreatedAt:      n.CreatedAt,
		Sent:           n.Sent,
	}
	if n.Error != nil {
		resp.Error = *n.Error
	}
	return resp
}

// ToNotificationListResponse converts a slice of domain notifications.
func ToNotificationListResponse(notifications []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		out[i] = ToNotificationResponse(&notifications[i])
	}
	return out
}
