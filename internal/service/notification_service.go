package service

import (
	"context"

	"schedulink-backend/internal/model"
	"schedulink-backend/internal/repository"
	apperrors "schedulink-backend/pkg/app_errors"
)

type NotificationService interface {
	List(ctx context.Context) ([]*model.Notification, error)
	GetByID(ctx context.Context, id int) (*model.Notification, error)
	Create(ctx context.Context, notification *model.Notification) (int, error)
	Update(ctx context.Context, id int, notification *model.Notification) error
	UpdateStatus(ctx context.Context, id int, status model.NotificationStatus) error
	Delete(ctx context.Context, id int) error
}

type NotificationServiceImpl struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{repo: repo}
}

func (s *NotificationServiceImpl) List(ctx context.Context) ([]*model.Notification, error) {
	return s.repo.List(ctx)
}

func (s *NotificationServiceImpl) GetByID(ctx context.Context, id int) (*model.Notification, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NotificationServiceImpl) Create(ctx context.Context, notification *model.Notification) (int, error) {
	if notification.Status != "" && !notification.Status.IsValid() {
		return 0, apperrors.ErrInvalidInput
	}
	return s.repo.Create(ctx, notification)
}

func (s *NotificationServiceImpl) Update(ctx context.Context, id int, notification *model.Notification) error {
	if notification.Status != "" && !notification.Status.IsValid() {
		return apperrors.ErrInvalidInput
	}
	return s.repo.Update(ctx, id, notification)
}

func (s *NotificationServiceImpl) UpdateStatus(ctx context.Context, id int, status model.NotificationStatus) error {
	if status == "" {
		return apperrors.ErrMissingRequiredFields
	}
	if !status.IsValid() {
		return apperrors.ErrInvalidInput
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *NotificationServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
