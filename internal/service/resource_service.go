package service

import (
	"context"

	"schedulink-backend/internal/model"
	"schedulink-backend/internal/repository"
	apperrors "schedulink-backend/pkg/app_errors"
)

type ResourceService interface {
	List(ctx context.Context) ([]*model.Resource, error)
	GetByID(ctx context.Context, id int) (*model.Resource, error)
	Create(ctx context.Context, resource *model.Resource) (int, error)
	Update(ctx context.Context, id int, resource *model.Resource) error
	Delete(ctx context.Context, id int) error
}

type ResourceServiceImpl struct {
	repo repository.ResourceRepository
}

func NewResourceService(repo repository.ResourceRepository) ResourceService {
	return &ResourceServiceImpl{repo: repo}
}

func (s *ResourceServiceImpl) List(ctx context.Context) ([]*model.Resource, error) {
	return s.repo.List(ctx)
}

func (s *ResourceServiceImpl) GetByID(ctx context.Context, id int) (*model.Resource, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ResourceServiceImpl) Create(ctx context.Context, resource *model.Resource) (int, error) {
	if err := validateResource(resource); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, resource)
}

func (s *ResourceServiceImpl) Update(ctx context.Context, id int, resource *model.Resource) error {
	if err := validateResource(resource); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, resource)
}

func (s *ResourceServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// validateResource 空值交給資料庫預設或保留原值
func validateResource(resource *model.Resource) error {
	if resource.Condition != "" && !resource.Condition.IsValid() {
		return apperrors.ErrInvalidInput
	}
	if resource.Status != "" && !resource.Status.IsValid() {
		return apperrors.ErrInvalidInput
	}
	return nil
}
