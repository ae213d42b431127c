package repository

import (
	"context"
	"errors"
	"fmt"

	"schedulink-backend/internal/model"
	apperrors "schedulink-backend/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

type RegistrationRepository interface {
	List(ctx context.Context) ([]*model.Registration, error)
	FindByID(ctx context.Context, id int) (*model.Registration, error)
	Create(ctx context.Context, registration *model.Registration) (int, error)
	Update(ctx context.Context, id int, registration *model.Registration) error
	Delete(ctx context.Context, id int) error
}

type RegistrationRepositoryImpl struct {
	db DBTX
}

func NewRegistrationRepository(db DBTX) RegistrationRepository {
	return &RegistrationRepositoryImpl{
		db: db,
	}
}

const selectRegistration = `
	SELECT r.id, r.event_id, e.title, r.participant_name, r.email,
	       r.phone, r.organization, r.student_id, r.status, r.created_at
	FROM registrations r
	JOIN events e ON e.id = r.event_id
`

func scanRegistration(row pgx.Row) (*model.Registration, error) {
	var registration model.Registration
	err := row.Scan(
		&registration.ID,
		&registration.EventID,
		&registration.EventTitle,
		&registration.ParticipantName,
		&registration.Email,
		&registration.Phone,
		&registration.Organization,
		&registration.StudentID,
		&registration.Status,
		&registration.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *RegistrationRepositoryImpl) List(ctx context.Context) ([]*model.Registration, error) {
	query := selectRegistration + `
		ORDER BY r.created_at DESC, r.id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]*model.Registration, 0)
	for rows.Next() {
		registration, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, registration)
	}
	return registrations, rows.Err()
}

func (r *RegistrationRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Registration, error) {
	query := selectRegistration + `
		WHERE r.id = $1
	`
	registration, err := scanRegistration(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, err
	}
	return registration, nil
}

func (r *RegistrationRepositoryImpl) Create(ctx context.Context, registration *model.Registration) (int, error) {
	query := `
		INSERT INTO registrations (
			event_id, participant_name, email, phone, organization, student_id, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7::text, 'pending'))
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		registration.EventID,
		registration.ParticipantName,
		registration.Email,
		registration.Phone,
		registration.Organization,
		registration.StudentID,
		emptyToNil(string(registration.Status)),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, apperrors.ErrEventNotFound
		}
		return 0, fmt.Errorf("failed to create registration: %w", err)
	}
	return id, nil
}

func (r *RegistrationRepositoryImpl) Update(ctx context.Context, id int, registration *model.Registration) error {
	query := `
		UPDATE registrations
		SET event_id = $1,
		    participant_name = $2,
		    email = $3,
		    phone = $4,
		    organization = $5,
		    student_id = $6,
		    status = COALESCE($7::text, status)
		WHERE id = $8
	`
	result, err := r.db.Exec(ctx, query,
		registration.EventID,
		registration.ParticipantName,
		registration.Email,
		registration.Phone,
		registration.Organization,
		registration.StudentID,
		emptyToNil(string(registration.Status)),
		id,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to update registration: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}
	return nil
}

func (r *RegistrationRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}
	return nil
}
