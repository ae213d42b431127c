package handler_test

import (
	"net/http"
	"testing"

	"schedulink-backend/internal/handler"
	"schedulink-backend/internal/model"
	"schedulink-backend/internal/service/mocks"
	apperrors "schedulink-backend/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateNotification(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockNotificationService(t)
		router := setupTestRouter(handler.NewNotificationHandler(mockService))

		mockService.On("Create", mock.Anything, &model.Notification{EventID: 1, Message: "Room changed"}).Return(3, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/notifications", map[string]interface{}{
			"event_id": 1,
			"message":  "Room changed",
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		mockService := mocks.NewMockNotificationService(t)
		router := setupTestRouter(handler.NewNotificationHandler(mockService))

		mockService.On("Create", mock.Anything, mock.Anything).Return(0, apperrors.ErrEventNotFound).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/notifications", map[string]interface{}{
			"event_id": 9999,
			"message":  "Hello",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Event not found", decodeBody(t, w)["error"])
	})
}

func TestNotificationStatusRoutes(t *testing.T) {
	cases := []struct {
		path    string
		body    interface{}
		status  model.NotificationStatus
		message string
	}{
		{"/api/notifications/1/approve", nil, model.NotificationStatusApproved, "Notification approved"},
		{"/api/notifications/1/decline", nil, model.NotificationStatusDeclined, "Notification declined"},
		{"/api/notifications/1/status", map[string]string{"status": "pending"}, model.NotificationStatusPending, "Notification status updated"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			mockService := mocks.NewMockNotificationService(t)
			router := setupTestRouter(handler.NewNotificationHandler(mockService))

			mockService.On("UpdateStatus", mock.Anything, 1, tc.status).Return(nil).Once()

			w := serve(router, createJSONHTTPRequest("PUT", tc.path, tc.body))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.message, decodeBody(t, w)["message"])
		})
	}

	t.Run("Approve - not found", func(t *testing.T) {
		mockService := mocks.NewMockNotificationService(t)
		router := setupTestRouter(handler.NewNotificationHandler(mockService))

		mockService.On("UpdateStatus", mock.Anything, 9999, model.NotificationStatusApproved).
			Return(apperrors.ErrNotificationNotFound).Once()

		w := serve(router, createJSONHTTPRequest("PUT", "/api/notifications/9999/approve", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteNotification(t *testing.T) {
	mockService := mocks.NewMockNotificationService(t)
	router := setupTestRouter(handler.NewNotificationHandler(mockService))

	mockService.On("Delete", mock.Anything, 4).Return(nil).Once()

	w := serve(router, createJSONHTTPRequest("DELETE", "/api/notifications/4", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Notification deleted", decodeBody(t, w)["message"])
}
