package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"schedulink-backend/internal/handler"
	"schedulink-backend/internal/model"
	"schedulink-backend/internal/service/mocks"
	apperrors "schedulink-backend/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateRegistration(t *testing.T) {
	t.Run("Success - by event title", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupTestRouter(handler.NewRegistrationHandler(mockService))

		mockService.On("Create", mock.Anything, mock.MatchedBy(func(in model.RegistrationInput) bool {
			return in.EventID == nil && in.EventTitle != nil && *in.EventTitle == "Demo Day" &&
				in.ParticipantName == "Ann" && in.Email == "ann@x.io"
		})).Return(1, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/registrations", map[string]string{
			"event_title":      "Demo Day",
			"participant_name": "Ann",
			"email":            "ann@x.io",
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(1), decodeBody(t, w)["id"])
	})

	t.Run("Failed - unknown event title", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupTestRouter(handler.NewRegistrationHandler(mockService))

		mockService.On("Create", mock.Anything, mock.Anything).Return(0, apperrors.ErrEventNotFound).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/registrations", map[string]string{
			"event_title":      "Nonexistent",
			"participant_name": "Ann",
			"email":            "ann@x.io",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Event not found", decodeBody(t, w)["error"])
	})

	t.Run("Failed - missing fields", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupTestRouter(handler.NewRegistrationHandler(mockService))

		mockService.On("Create", mock.Anything, mock.Anything).Return(0, apperrors.ErrMissingRequiredFields).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/registrations", map[string]string{
			"participant_name": "Ann",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupTestRouter(handler.NewRegistrationHandler(mockService))

		w := serve(router, createJSONHTTPRequest("POST", "/api/registrations", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListRegistrations(t *testing.T) {
	mockService := mocks.NewMockRegistrationService(t)
	router := setupTestRouter(handler.NewRegistrationHandler(mockService))

	mockService.On("List", mock.Anything).Return([]*model.Registration{
		{ID: 1, EventID: 1, EventTitle: "Demo Day", ParticipantName: "Ann", Email: "ann@x.io"},
	}, nil).Once()

	w := serve(router, createJSONHTTPRequest("GET", "/api/registrations", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"event_title":"Demo Day"`)
}

func TestGetRegistration(t *testing.T) {
	t.Run("Failed - not found", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupTestRouter(handler.NewRegistrationHandler(mockService))

		mockService.On("GetByID", mock.Anything, 9999).Return(nil, apperrors.ErrRegistrationNotFound).Once()

		w := serve(router, createJSONHTTPRequest("GET", "/api/registrations/9999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Registration not found", decodeBody(t, w)["error"])
	})
}

func TestUpdateRegistration(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupTestRouter(handler.NewRegistrationHandler(mockService))

		mockService.On("Update", mock.Anything, 2, mock.MatchedBy(func(in model.RegistrationInput) bool {
			return in.EventID != nil && *in.EventID == 1 && in.Status == model.RegistrationStatusConfirmed
		})).Return(nil).Once()

		w := serve(router, createJSONHTTPRequest("PUT", "/api/registrations/2", map[string]interface{}{
			"event_id":         1,
			"participant_name": "Ann",
			"email":            "ann@x.io",
			"status":           "confirmed",
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Registration updated", decodeBody(t, w)["message"])
	})
}

func TestDeleteRegistration(t *testing.T) {
	t.Run("Failed - internal error", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupTestRouter(handler.NewRegistrationHandler(mockService))

		mockService.On("Delete", mock.Anything, 2).Return(errors.New("db down")).Once()

		w := serve(router, createJSONHTTPRequest("DELETE", "/api/registrations/2", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to delete registration", decodeBody(t, w)["error"])
	})

	t.Run("Failed - id beyond int4 is not found", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupTestRouter(handler.NewRegistrationHandler(mockService))

		w := serve(router, createJSONHTTPRequest("DELETE", "/api/registrations/99999999999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Registration not found", decodeBody(t, w)["error"])
		mockService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
