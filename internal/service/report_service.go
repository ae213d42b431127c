package service

import (
	"context"

	"schedulink-backend/internal/model"
	"schedulink-backend/internal/repository"
)

type ReportService interface {
	EventReports(ctx context.Context) ([]*model.EventReport, error)
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type ReportServiceImpl struct {
	repo repository.ReportRepository
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &ReportServiceImpl{repo: repo}
}

func (s *ReportServiceImpl) EventReports(ctx context.Context) ([]*model.EventReport, error) {
	return s.repo.EventReports(ctx)
}

// DashboardStats 依序執行四個統計查詢，任一失敗即回傳錯誤
func (s *ReportServiceImpl) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var (
		stats model.DashboardStats
		err   error
	)

	if stats.Events, err = s.repo.EventStats(ctx); err != nil {
		return nil, err
	}
	if stats.Registrations, err = s.repo.RegistrationStats(ctx); err != nil {
		return nil, err
	}
	if stats.Notifications, err = s.repo.NotificationStats(ctx); err != nil {
		return nil, err
	}
	if stats.Resources, err = s.repo.ResourceStats(ctx); err != nil {
		return nil, err
	}

	return &stats, nil
}
