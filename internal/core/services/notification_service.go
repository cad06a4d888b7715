package services

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/bs23/ems_backend/internal/core/domain"
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/middleware"
	"github.com/bs23/ems_backend/internal/platform/mail"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

const dispatchTimeout = 15 * time.Second

// notificationService sends outbound mail and records every attempt in the
// notification log. Delivery failures never surface to the operation that
// triggered the send.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
	sender           mail.Sender
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade, sender mail.Sender) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
		sender:           sender,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// Notify dispatches asynchronously. The spawned send gets its own context;
// the request context is likely cancelled before the send completes.
func (s *notificationService) Notify(ctx context.Context, to, subject, body string) {
	logger := middleware.GetLoggerFromCtx(ctx)
	go func() {
		sendCtx, cancel := context.WithTimeout(middleware.WithLogger(context.Background(), logger), dispatchTimeout)
		defer cancel()
		s.SendAndLog(sendCtx, to, subject, body)
	}()
}

// SendAndLog performs one synchronous send attempt and appends the audit
// record. The returned entry carries the outcome; the send error is never
// returned.
func (s *notificationService) SendAndLog(ctx context.Context, to, subject, body string) *domain.Notification {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry := domain.Notification{
		RecipientEmail: to,
		Subject:        subject,
		Message:        body,
		CreatedAt:      time.Now(),
	}

	if !emailPattern.MatchString(to) {
		msg := "invalid recipient address"
		entry.Error = &msg
		logger.Warn("Skipping notification with invalid recipient", slog.String("to", to))
	} else if err := s.sender.Send(ctx, to, subject, body); err != nil {
		msg := err.Error()
		entry.Error = &msg
		logger.Error("Failed to send notification",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.String("error", err.Error()))
	} else {
		entry.Sent = true
		logger.Info("Notification sent", slog.String("to", to), slog.String("subject", subject))
	}

	saved, err := s.notificationRepo.SaveNotification(ctx, entry)
	if err != nil {
		logger.Error("Failed to record notification", slog.String("error", err.Error()))
		return &entry
	}
	return saved
}

// ListNotifications retrieves the audit log, newest first.
func (s *notificationService) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	return s.notificationRepo.FindNotifications(ctx)
}

// GetNotificationByID retrieves one log entry.
func (s *notificationService) GetNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error) {
	return s.notificationRepo.FindNotificationByID(ctx, notificationID)
}

// DeleteNotification removes a log entry.
func (s *notificationService) DeleteNotification(ctx context.Context, notificationID int64) error {
	return s.notificationRepo.DeleteNotification(ctx, notificationID)
}
