package service_test

import (
	"context"
	"testing"

	"schedulink-backend/internal/model"
	repoMocks "schedulink-backend/internal/repository/mocks"
	"schedulink-backend/internal/service"
	apperrors "schedulink-backend/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRegistrationServiceMocks(t *testing.T) (
	*repoMocks.MockRegistrationRepository,
	*repoMocks.MockEventRepository,
	service.RegistrationService,
) {
	registrationRepo := repoMocks.NewMockRegistrationRepository(t)
	eventRepo := repoMocks.NewMockEventRepository(t)
	return registrationRepo, eventRepo, service.NewRegistrationService(registrationRepo, eventRepo)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestRegistrationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - by event id", func(t *testing.T) {
		registrationRepo, eventRepo, registrationService := setupRegistrationServiceMocks(t)

		eventRepo.On("FindByID", ctx, 3).Return(&model.Event{ID: 3, Title: "Demo Day"}, nil).Once()
		registrationRepo.On("Create", ctx, mock.MatchedBy(func(r *model.Registration) bool {
			return r.EventID == 3 && r.ParticipantName == "Ann" && r.Email == "ann@x.io"
		})).Return(11, nil).Once()

		id, err := registrationService.Create(ctx, model.RegistrationInput{
			EventID:         intPtr(3),
			ParticipantName: " Ann ",
			Email:           "ann@x.io",
		})

		require.NoError(t, err)
		assert.Equal(t, 11, id)
		eventRepo.AssertNotCalled(t, "FindByTitle", mock.Anything, mock.Anything)
	})

	t.Run("Success - by event title", func(t *testing.T) {
		registrationRepo, eventRepo, registrationService := setupRegistrationServiceMocks(t)

		eventRepo.On("FindByTitle", ctx, "Demo Day").Return(&model.Event{ID: 3, Title: "Demo Day"}, nil).Once()
		registrationRepo.On("Create", ctx, mock.MatchedBy(func(r *model.Registration) bool {
			return r.EventID == 3 && r.StudentID != nil && *r.StudentID == "S1"
		})).Return(12, nil).Once()

		id, err := registrationService.Create(ctx, model.RegistrationInput{
			EventTitle:      strPtr("  Demo Day "),
			ParticipantName: "Ann",
			Email:           "ann@x.io",
			StudentID:       strPtr("S1"),
		})

		require.NoError(t, err)
		assert.Equal(t, 12, id)
	})

	t.Run("Failed - event title not found", func(t *testing.T) {
		registrationRepo, eventRepo, registrationService := setupRegistrationServiceMocks(t)

		eventRepo.On("FindByTitle", ctx, "Nonexistent").Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := registrationService.Create(ctx, model.RegistrationInput{
			EventTitle:      strPtr("Nonexistent"),
			ParticipantName: "Ann",
			Email:           "ann@x.io",
		})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		registrationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed - event id not found", func(t *testing.T) {
		registrationRepo, eventRepo, registrationService := setupRegistrationServiceMocks(t)

		eventRepo.On("FindByID", ctx, 9999).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := registrationService.Create(ctx, model.RegistrationInput{
			EventID:         intPtr(9999),
			ParticipantName: "Ann",
			Email:           "ann@x.io",
		})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		registrationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed - missing required fields", func(t *testing.T) {
		cases := map[string]model.RegistrationInput{
			"no name":  {EventID: intPtr(1), Email: "ann@x.io"},
			"no email": {EventID: intPtr(1), ParticipantName: "Ann"},
			"no event": {ParticipantName: "Ann", Email: "ann@x.io"},
			"blank title": {
				EventTitle:      strPtr("   "),
				ParticipantName: "Ann",
				Email:           "ann@x.io",
			},
		}
		for name, input := range cases {
			t.Run(name, func(t *testing.T) {
				_, _, registrationService := setupRegistrationServiceMocks(t)

				_, err := registrationService.Create(ctx, input)

				assert.ErrorIs(t, err, apperrors.ErrMissingRequiredFields)
			})
		}
	})

	t.Run("Failed - invalid status", func(t *testing.T) {
		_, _, registrationService := setupRegistrationServiceMocks(t)

		_, err := registrationService.Create(ctx, model.RegistrationInput{
			EventID:         intPtr(1),
			ParticipantName: "Ann",
			Email:           "ann@x.io",
			Status:          "waitlisted",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestRegistrationService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		registrationRepo, eventRepo, registrationService := setupRegistrationServiceMocks(t)

		eventRepo.On("FindByID", ctx, 3).Return(&model.Event{ID: 3}, nil).Once()
		registrationRepo.On("Update", ctx, 8, mock.MatchedBy(func(r *model.Registration) bool {
			return r.EventID == 3 && r.Status == model.RegistrationStatusConfirmed
		})).Return(nil).Once()

		err := registrationService.Update(ctx, 8, model.RegistrationInput{
			EventID:         intPtr(3),
			ParticipantName: "Ann",
			Email:           "ann@x.io",
			Status:          model.RegistrationStatusConfirmed,
		})

		require.NoError(t, err)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		registrationRepo, eventRepo, registrationService := setupRegistrationServiceMocks(t)

		eventRepo.On("FindByID", ctx, 3).Return(&model.Event{ID: 3}, nil).Once()
		registrationRepo.On("Update", ctx, 9999, mock.Anything).Return(apperrors.ErrRegistrationNotFound).Once()

		err := registrationService.Update(ctx, 9999, model.RegistrationInput{
			EventID:         intPtr(3),
			ParticipantName: "Ann",
			Email:           "ann@x.io",
		})

		assert.ErrorIs(t, err, apperrors.ErrRegistrationNotFound)
	})
}
