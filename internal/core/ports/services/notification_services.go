package services

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// NotificationSvcFacade dispatches outbound mail and maintains the audit log.
type NotificationSvcFacade interface {
	// Notify dispatches a message asynchronously, off the request-handling
	// path. The send outcome is recorded in the notification log; failures
	// are never propagated to the caller.
	Notify(ctx context.Context, to, subject, body string)

	// SendAndLog performs one synchronous send attempt and appends the audit
	// record. It returns the log entry, not the send error.
	SendAndLog(ctx context.Context, to, subject, body string) *domain.Notification

	// ListNotifications retrieves the audit log, newest first.
	ListNotifications(ctx context.Context) ([]domain.Notification, error)

	// GetNotificationByID retrieves one log entry.
	GetNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error)

	// DeleteNotification removes a log entry.
	DeleteNotification(ctx context.Context, notificationID int64) error
}
