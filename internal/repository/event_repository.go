package repository

import (
	"context"
	"errors"
	"fmt"

	"schedulink-backend/internal/model"
	apperrors "schedulink-backend/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

type EventRepository interface {
	List(ctx context.Context) ([]*model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	FindByTitle(ctx context.Context, title string) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (int, error)
	Update(ctx context.Context, id int, event *model.Event) error
	UpdateStatus(ctx context.Context, id int, status model.EventStatus) error
	Delete(ctx context.Context, id int) error
}

type EventRepositoryImpl struct {
	db DBTX
}

func NewEventRepository(db DBTX) EventRepository {
	return &EventRepositoryImpl{
		db: db,
	}
}

// registered_count 於讀取時由 registrations 計算，不落地
const selectEventWithCount = `
	SELECT e.id, e.title, e.description,
	       to_char(e."date", 'YYYY-MM-DD'), e."time"::text,
	       e.location, e.capacity, e.organizer_id, e.status, e.created_at,
	       COUNT(r.id) AS registered_count
	FROM events e
	LEFT JOIN registrations r ON r.event_id = e.id
`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Capacity,
		&event.OrganizerID,
		&event.Status,
		&event.CreatedAt,
		&event.RegisteredCount,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := selectEventWithCount + `
		GROUP BY e.id
		ORDER BY e."date" DESC, e.id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := selectEventWithCount + `
		WHERE e.id = $1
		GROUP BY e.id
	`
	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// FindByTitle 以去除前後空白、不分大小寫的完全比對查找活動，多筆時取 id 最小者
func (r *EventRepositoryImpl) FindByTitle(ctx context.Context, title string) (*model.Event, error) {
	query := selectEventWithCount + `
		WHERE LOWER(TRIM(e.title)) = LOWER(TRIM($1))
		GROUP BY e.id
		ORDER BY e.id
		LIMIT 1
	`
	event, err := scanEvent(r.db.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (int, error) {
	query := `
		INSERT INTO events (title, description, "date", "time", location, capacity, organizer_id, status)
		VALUES ($1, $2, $3::text::date, $4::text::time, $5, $6, $7, COALESCE($8::text, 'pending'))
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		emptyToNil(event.Title),
		event.Description,
		emptyToNil(event.Date),
		emptyToNil(event.Time),
		event.Location,
		event.Capacity,
		event.OrganizerID,
		emptyToNil(string(event.Status)),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to create event: %w", err)
	}
	return id, nil
}

// Update 覆寫整筆活動資料；未提供的選填欄位寫入 NULL，status 未提供時保留原值
func (r *EventRepositoryImpl) Update(ctx context.Context, id int, event *model.Event) error {
	query := `
		UPDATE events
		SET title = $1,
		    description = $2,
		    "date" = $3::text::date,
		    "time" = $4::text::time,
		    location = $5,
		    capacity = $6,
		    status = COALESCE($7::text, status)
		WHERE id = $8
	`
	result, err := r.db.Exec(ctx, query,
		emptyToNil(event.Title),
		event.Description,
		emptyToNil(event.Date),
		emptyToNil(event.Time),
		event.Location,
		event.Capacity,
		emptyToNil(string(event.Status)),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.EventStatus) error {
	result, err := r.db.Exec(ctx, `UPDATE events SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Delete 刪除活動，其報名與通知由外鍵 ON DELETE CASCADE 一併移除
func (r *EventRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
