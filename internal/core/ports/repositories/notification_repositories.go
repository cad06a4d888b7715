package repositories

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// NotificationRepositoryFacade defines operations for the notification log.
// The log is append-only from the domain's point of view; deletion exists
// only as an administrative cleanup.
type NotificationRepositoryFacade interface {
	// SaveNotification appends an audit record of an attempted send.
	SaveNotification(ctx context.Context, notification domain.Notification) (*domain.Notification, error)

	// FindNotificationByID retrieves a single log entry.
	FindNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error)

	// FindNotifications retrieves all log entries, newest first.
	FindNotifications(ctx context.Context) ([]domain.Notification, error)

	// DeleteNotification removes a log entry.
	DeleteNotification(ctx context.Context, notificationID int64) error
}
