package repository

import (
	"context"
	"fmt"

	"schedulink-backend/internal/model"
)

type ReportRepository interface {
	EventReports(ctx context.Context) ([]*model.EventReport, error)
	EventStats(ctx context.Context) (model.EventStats, error)
	RegistrationStats(ctx context.Context) (model.RegistrationStats, error)
	NotificationStats(ctx context.Context) (model.NotificationStats, error)
	ResourceStats(ctx context.Context) (model.ResourceStats, error)
}

type ReportRepositoryImpl struct {
	db DBTX
}

func NewReportRepository(db DBTX) ReportRepository {
	return &ReportRepositoryImpl{
		db: db,
	}
}

func (r *ReportRepositoryImpl) EventReports(ctx context.Context) ([]*model.EventReport, error) {
	query := `
		SELECT e.id,
		       e.title,
		       to_char(e."date", 'YYYY-MM-DD'),
		       COUNT(r.id) AS total_registrations,
		       COALESCE(SUM(CASE WHEN r.status = 'confirmed' THEN 1 ELSE 0 END), 0) AS confirmed_attendees
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		GROUP BY e.id, e.title, e."date"
		ORDER BY e."date" DESC, e.id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]*model.EventReport, 0)
	for rows.Next() {
		var report model.EventReport
		err := rows.Scan(
			&report.ID,
			&report.Title,
			&report.Date,
			&report.TotalRegistrations,
			&report.ConfirmedAttendees,
		)
		if err != nil {
			return nil, err
		}
		reports = append(reports, &report)
	}
	return reports, rows.Err()
}

func (r *ReportRepositoryImpl) EventStats(ctx context.Context) (model.EventStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN "date" >= CURRENT_DATE THEN 1 ELSE 0 END), 0)
		FROM events
	`
	var stats model.EventStats
	if err := r.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.Upcoming); err != nil {
		return stats, fmt.Errorf("event stats: %w", err)
	}
	return stats, nil
}

func (r *ReportRepositoryImpl) RegistrationStats(ctx context.Context) (model.RegistrationStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'confirmed' THEN 1 ELSE 0 END), 0)
		FROM registrations
	`
	var stats model.RegistrationStats
	if err := r.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.Confirmed); err != nil {
		return stats, fmt.Errorf("registration stats: %w", err)
	}
	return stats, nil
}

func (r *ReportRepositoryImpl) NotificationStats(ctx context.Context) (model.NotificationStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0)
		FROM notifications
	`
	var stats model.NotificationStats
	if err := r.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.Approved, &stats.Pending); err != nil {
		return stats, fmt.Errorf("notification stats: %w", err)
	}
	return stats, nil
}

func (r *ReportRepositoryImpl) ResourceStats(ctx context.Context) (model.ResourceStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total_quantity), 0),
		       COALESCE(SUM(available_quantity), 0)
		FROM resources
	`
	var stats model.ResourceStats
	if err := r.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.TotalQuantity, &stats.AvailableQuantity); err != nil {
		return stats, fmt.Errorf("resource stats: %w", err)
	}
	return stats, nil
}
