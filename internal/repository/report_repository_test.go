package repository_test

import (
	"context"
	"testing"

	"schedulink-backend/internal/model"
	"schedulink-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepository(t *testing.T) {
	repo := repository.NewReportRepository(getTestDB())
	ctx := context.Background()

	t.Run("Empty database", func(t *testing.T) {
		setupTestWithTruncate(t)

		events, err := repo.EventStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.EventStats{}, events)

		resources, err := repo.ResourceStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.ResourceStats{}, resources)

		reports, err := repo.EventReports(ctx)
		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("Counts", func(t *testing.T) {
		setupTestWithTruncate(t)

		past := createTestEvent(t, "Past", "2000-01-01")
		future := createTestEvent(t, "Future", "2099-01-01")
		createTestRegistration(t, past, "ann", "confirmed")
		createTestRegistration(t, past, "bob", "pending")
		createTestRegistration(t, future, "cat", "confirmed")
		createTestNotification(t, past, "approved")
		createTestNotification(t, future, "pending")
		createTestNotification(t, future, "declined")

		resourceRepo := repository.NewResourceRepository(getTestDB())
		_, err := resourceRepo.Create(ctx, &model.Resource{Name: "Chair", TotalQuantity: 20, AvailableQuantity: 15})
		require.NoError(t, err)
		_, err = resourceRepo.Create(ctx, &model.Resource{Name: "Projector", TotalQuantity: 2, AvailableQuantity: 0})
		require.NoError(t, err)

		events, err := repo.EventStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.EventStats{Total: 2, Upcoming: 1}, events)

		registrations, err := repo.RegistrationStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.RegistrationStats{Total: 3, Confirmed: 2}, registrations)

		notifications, err := repo.NotificationStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.NotificationStats{Total: 3, Approved: 1, Pending: 1}, notifications)

		resources, err := repo.ResourceStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.ResourceStats{Total: 2, TotalQuantity: 22, AvailableQuantity: 15}, resources)

		reports, err := repo.EventReports(ctx)
		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, &model.EventReport{
			ID: future, Title: "Future", Date: "2099-01-01", TotalRegistrations: 1, ConfirmedAttendees: 1,
		}, reports[0])
		assert.Equal(t, &model.EventReport{
			ID: past, Title: "Past", Date: "2000-01-01", TotalRegistrations: 2, ConfirmedAttendees: 1,
		}, reports[1])
	})
}
