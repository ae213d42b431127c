package service

import (
	"context"

	"schedulink-backend/internal/model"
	"schedulink-backend/internal/repository"
	apperrors "schedulink-backend/pkg/app_errors"
)

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	GetByID(ctx context.Context, id int) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (int, error)
	Update(ctx context.Context, id int, event *model.Event) error
	UpdateStatus(ctx context.Context, id int, status model.EventStatus) error
	Delete(ctx context.Context, id int) error
}

type EventServiceImpl struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &EventServiceImpl{repo: repo}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id int) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (int, error) {
	if event.Status != "" && !event.Status.IsValid() {
		return 0, apperrors.ErrInvalidInput
	}
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) Update(ctx context.Context, id int, event *model.Event) error {
	if event.Status != "" && !event.Status.IsValid() {
		return apperrors.ErrInvalidInput
	}
	return s.repo.Update(ctx, id, event)
}

func (s *EventServiceImpl) UpdateStatus(ctx context.Context, id int, status model.EventStatus) error {
	if status == "" {
		return apperrors.ErrMissingRequiredFields
	}
	if !status.IsValid() {
		return apperrors.ErrInvalidInput
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
