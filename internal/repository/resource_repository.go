package repository

import (
	"context"
	"errors"
	"fmt"

	"schedulink-backend/internal/model"
	apperrors "schedulink-backend/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

type ResourceRepository interface {
	List(ctx context.Context) ([]*model.Resource, error)
	FindByID(ctx context.Context, id int) (*model.Resource, error)
	Create(ctx context.Context, resource *model.Resource) (int, error)
	Update(ctx context.Context, id int, resource *model.Resource) error
	Delete(ctx context.Context, id int) error
}

type ResourceRepositoryImpl struct {
	db DBTX
}

func NewResourceRepository(db DBTX) ResourceRepository {
	return &ResourceRepositoryImpl{
		db: db,
	}
}

func scanResource(row pgx.Row) (*model.Resource, error) {
	var resource model.Resource
	err := row.Scan(
		&resource.ID,
		&resource.Name,
		&resource.Category,
		&resource.TotalQuantity,
		&resource.AvailableQuantity,
		&resource.Location,
		&resource.Condition,
		&resource.Status,
		&resource.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *ResourceRepositoryImpl) List(ctx context.Context) ([]*model.Resource, error) {
	query := `
		SELECT id, name, category, total_quantity, available_quantity,
		       location, "condition", status, created_at
		FROM resources
		ORDER BY name ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resources := make([]*model.Resource, 0)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		resources = append(resources, resource)
	}
	return resources, rows.Err()
}

func (r *ResourceRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Resource, error) {
	query := `
		SELECT id, name, category, total_quantity, available_quantity,
		       location, "condition", status, created_at
		FROM resources
		WHERE id = $1
	`
	resource, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return resource, nil
}

func (r *ResourceRepositoryImpl) Create(ctx context.Context, resource *model.Resource) (int, error) {
	query := `
		INSERT INTO resources (
			name, category, total_quantity, available_quantity, location, "condition", status
		)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6::text, 'good'), COALESCE($7::text, 'available'))
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		emptyToNil(resource.Name),
		resource.Category,
		resource.TotalQuantity,
		resource.AvailableQuantity,
		resource.Location,
		emptyToNil(string(resource.Condition)),
		emptyToNil(string(resource.Status)),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create resource: %w", err)
	}
	return id, nil
}

// Update 覆寫整筆資源資料；condition 與 status 未提供時保留原值
func (r *ResourceRepositoryImpl) Update(ctx context.Context, id int, resource *model.Resource) error {
	query := `
		UPDATE resources
		SET name = $1,
		    category = $2,
		    total_quantity = $3,
		    available_quantity = $4,
		    location = $5,
		    "condition" = COALESCE($6::text, "condition"),
		    status = COALESCE($7::text, status)
		WHERE id = $8
	`
	result, err := r.db.Exec(ctx, query,
		emptyToNil(resource.Name),
		resource.Category,
		resource.TotalQuantity,
		resource.AvailableQuantity,
		resource.Location,
		emptyToNil(string(resource.Condition)),
		emptyToNil(string(resource.Status)),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update resource: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
