package service_test

import (
	"context"
	"testing"

	"schedulink-backend/internal/model"
	repoMocks "schedulink-backend/internal/repository/mocks"
	"schedulink-backend/internal/service"
	apperrors "schedulink-backend/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		notificationRepo := repoMocks.NewMockNotificationRepository(t)
		notificationService := service.NewNotificationService(notificationRepo)

		notification := &model.Notification{EventID: 1, Message: "Room changed"}
		notificationRepo.On("Create", ctx, notification).Return(4, nil).Once()

		id, err := notificationService.Create(ctx, notification)

		require.NoError(t, err)
		assert.Equal(t, 4, id)
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		notificationRepo := repoMocks.NewMockNotificationRepository(t)
		notificationService := service.NewNotificationService(notificationRepo)

		notification := &model.Notification{EventID: 9999, Message: "Hello"}
		notificationRepo.On("Create", ctx, notification).Return(0, apperrors.ErrEventNotFound).Once()

		_, err := notificationService.Create(ctx, notification)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("Failed - invalid status", func(t *testing.T) {
		notificationRepo := repoMocks.NewMockNotificationRepository(t)
		notificationService := service.NewNotificationService(notificationRepo)

		_, err := notificationService.Create(ctx, &model.Notification{EventID: 1, Message: "Hi", Status: "sent"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestNotificationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve", func(t *testing.T) {
		notificationRepo := repoMocks.NewMockNotificationRepository(t)
		notificationService := service.NewNotificationService(notificationRepo)

		notificationRepo.On("UpdateStatus", ctx, 2, model.NotificationStatusApproved).Return(nil).Once()

		require.NoError(t, notificationService.UpdateStatus(ctx, 2, model.NotificationStatusApproved))
	})

	t.Run("Failed - not found", func(t *testing.T) {
		notificationRepo := repoMocks.NewMockNotificationRepository(t)
		notificationService := service.NewNotificationService(notificationRepo)

		notificationRepo.On("UpdateStatus", ctx, 9999, model.NotificationStatusDeclined).
			Return(apperrors.ErrNotificationNotFound).Once()

		err := notificationService.UpdateStatus(ctx, 9999, model.NotificationStatusDeclined)

		assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
	})

	t.Run("Failed - missing status", func(t *testing.T) {
		notificationRepo := repoMocks.NewMockNotificationRepository(t)
		notificationService := service.NewNotificationService(notificationRepo)

		assert.ErrorIs(t, notificationService.UpdateStatus(ctx, 2, ""), apperrors.ErrMissingRequiredFields)
	})
}
