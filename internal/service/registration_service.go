package service

import (
	"context"
	"strings"

	"schedulink-backend/internal/model"
	"schedulink-backend/internal/repository"
	apperrors "schedulink-backend/pkg/app_errors"
	"schedulink-backend/pkg/logger"

	"go.uber.org/zap"
)

type RegistrationService interface {
	List(ctx context.Context) ([]*model.Registration, error)
	GetByID(ctx context.Context, id int) (*model.Registration, error)
	// Create 建立報名；未提供 event_id 時以 event_title 查找活動
	Create(ctx context.Context, input model.RegistrationInput) (int, error)
	Update(ctx context.Context, id int, input model.RegistrationInput) error
	Delete(ctx context.Context, id int) error
}

type RegistrationServiceImpl struct {
	repo      repository.RegistrationRepository
	eventRepo repository.EventRepository
}

func NewRegistrationService(repo repository.RegistrationRepository, eventRepo repository.EventRepository) RegistrationService {
	return &RegistrationServiceImpl{repo: repo, eventRepo: eventRepo}
}

func (s *RegistrationServiceImpl) List(ctx context.Context) ([]*model.Registration, error) {
	return s.repo.List(ctx)
}

func (s *RegistrationServiceImpl) GetByID(ctx context.Context, id int) (*model.Registration, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RegistrationServiceImpl) Create(ctx context.Context, input model.RegistrationInput) (int, error) {
	registration, err := s.prepare(ctx, input)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, registration)
}

func (s *RegistrationServiceImpl) Update(ctx context.Context, id int, input model.RegistrationInput) error {
	registration, err := s.prepare(ctx, input)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, registration)
}

func (s *RegistrationServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// prepare 檢查必填欄位並解析活動 id
func (s *RegistrationServiceImpl) prepare(ctx context.Context, input model.RegistrationInput) (*model.Registration, error) {
	name := strings.TrimSpace(input.ParticipantName)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, apperrors.ErrMissingRequiredFields
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	eventID, err := s.resolveEventID(ctx, input)
	if err != nil {
		return nil, err
	}

	return &model.Registration{
		EventID:         eventID,
		ParticipantName: name,
		Email:           email,
		Phone:           input.Phone,
		Organization:    input.Organization,
		StudentID:       input.StudentID,
		Status:          input.Status,
	}, nil
}

func (s *RegistrationServiceImpl) resolveEventID(ctx context.Context, input model.RegistrationInput) (int, error) {
	if input.EventID != nil {
		event, err := s.eventRepo.FindByID(ctx, *input.EventID)
		if err != nil {
			return 0, err
		}
		return event.ID, nil
	}

	if input.EventTitle == nil || strings.TrimSpace(*input.EventTitle) == "" {
		return 0, apperrors.ErrMissingRequiredFields
	}

	title := strings.TrimSpace(*input.EventTitle)
	event, err := s.eventRepo.FindByTitle(ctx, title)
	if err != nil {
		return 0, err
	}
	logger.WithComponent("service").Debug("Resolved event by title",
		zap.String("title", title), zap.Int("event_id", event.ID))
	return event.ID, nil
}
