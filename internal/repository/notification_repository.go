package repository

import (
	"context"
	"errors"
	"fmt"

	"schedulink-backend/internal/model"
	apperrors "schedulink-backend/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

type NotificationRepository interface {
	List(ctx context.Context) ([]*model.Notification, error)
	FindByID(ctx context.Context, id int) (*model.Notification, error)
	Create(ctx context.Context, notification *model.Notification) (int, error)
	Update(ctx context.Context, id int, notification *model.Notification) error
	UpdateStatus(ctx context.Context, id int, status model.NotificationStatus) error
	Delete(ctx context.Context, id int) error
}

type NotificationRepositoryImpl struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) NotificationRepository {
	return &NotificationRepositoryImpl{
		db: db,
	}
}

func (r *NotificationRepositoryImpl) List(ctx context.Context) ([]*model.Notification, error) {
	query := `
		SELECT id, event_id, message, status, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*model.Notification, 0)
	for rows.Next() {
		var notification model.Notification
		err := rows.Scan(
			&notification.ID,
			&notification.EventID,
			&notification.Message,
			&notification.Status,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, &notification)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Notification, error) {
	query := `
		SELECT id, event_id, message, status, created_at
		FROM notifications
		WHERE id = $1
	`
	var notification model.Notification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&notification.ID,
		&notification.EventID,
		&notification.Message,
		&notification.Status,
		&notification.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *model.Notification) (int, error) {
	query := `
		INSERT INTO notifications (event_id, message, status)
		VALUES ($1, $2, COALESCE($3::text, 'pending'))
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		notification.EventID,
		emptyToNil(notification.Message),
		emptyToNil(string(notification.Status)),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, apperrors.ErrEventNotFound
		}
		return 0, fmt.Errorf("failed to create notification: %w", err)
	}
	return id, nil
}

func (r *NotificationRepositoryImpl) Update(ctx context.Context, id int, notification *model.Notification) error {
	query := `
		UPDATE notifications
		SET event_id = $1,
		    message = $2,
		    status = COALESCE($3::text, status)
		WHERE id = $4
	`
	result, err := r.db.Exec(ctx, query,
		notification.EventID,
		emptyToNil(notification.Message),
		emptyToNil(string(notification.Status)),
		id,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to update notification: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.NotificationStatus) error {
	result, err := r.db.Exec(ctx, `UPDATE notifications SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}
