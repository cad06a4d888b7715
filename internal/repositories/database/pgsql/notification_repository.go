package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	"github.com/bs23/ems_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository{Pool: db}}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func toDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		RecipientEmail: m.RecipientEmail,
		Subject:        m.Subject,
		Message:        m.Message,
		CreatedAt:      m.CreatedAt,
		Sent:           m.Sent,
		Error:          m.Error,
	}
}

const notificationColumns = `notification_id, recipient_email, subject, message, created_at, sent, error`

func scanNotification(row pgx.Row) (*models.Notification, error) {
	var m models.Notification
	err := row.Scan(&m.NotificationID, &m.RecipientEmail, &m.Subject, &m.Message, &m.CreatedAt, &m.Sent, &m.Error)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) (*domain.Notification, error) {
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO notifications (recipient_email, subject, message, created_at, sent, error)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING notification_id;
	`,
		notification.RecipientEmail,
		notification.Subject,
		notification.Message,
		notification.CreatedAt,
		notification.Sent,
		notification.Error,
	).Scan(&notification.NotificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}
	return &notification, nil
}

func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE notification_id = $1;`
	m, err := scanNotification(r.Pool.QueryRow(ctx, query, notificationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notification by ID %d: %w", notificationID, err)
	}
	d := toDomainNotification(*m)
	return &d, nil
}

func (r *PgxNotificationRepository) FindNotifications(ctx context.Context) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications ORDER BY notification_id DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		m, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, toDomainNotification(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, notificationID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM notifications WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return fmt.Errorf("failed to delete notification %d: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
