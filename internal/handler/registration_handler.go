package handler

import (
	"errors"
	"net/http"

	"schedulink-backend/internal/model"
	"schedulink-backend/internal/service"
	apperrors "schedulink-backend/pkg/app_errors"
	"schedulink-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RegistrationHandler struct {
	service service.RegistrationService
}

func NewRegistrationHandler(service service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) RegisterRoutes(r *gin.RouterGroup) {
	router := r.Group("/registrations")
	{
		router.GET("", h.List)
		router.GET("/:id", h.GetByID)
		router.POST("", h.Create)
		router.PUT("/:id", h.Update)
		router.DELETE("/:id", h.Delete)
	}
}

// RegistrationRequest event_id 與 event_title 擇一提供
type RegistrationRequest struct {
	EventID         *int                     `json:"event_id"`
	EventTitle      *string                  `json:"event_title"`
	ParticipantName string                   `json:"participant_name"`
	Email           string                   `json:"email"`
	Phone           *string                  `json:"phone"`
	Organization    *string                  `json:"organization"`
	StudentID       *string                  `json:"student_id"`
	Status          model.RegistrationStatus `json:"status"`
}

func (req RegistrationRequest) toInput() model.RegistrationInput {
	return model.RegistrationInput{
		EventID:         req.EventID,
		EventTitle:      req.EventTitle,
		ParticipantName: req.ParticipantName,
		Email:           req.Email,
		Phone:           req.Phone,
		Organization:    req.Organization,
		StudentID:       req.StudentID,
		Status:          req.Status,
	}
}

func (h *RegistrationHandler) List(c *gin.Context) {
	registrations, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List", "Failed to load registrations")
		return
	}
	c.JSON(http.StatusOK, registrations)
}

func (h *RegistrationHandler) GetByID(c *gin.Context) {
	id, ok := ParseID(c, "registration")
	if !ok {
		return
	}
	registration, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID", "Failed to load registration")
		return
	}
	c.JSON(http.StatusOK, registration)
}

func (h *RegistrationHandler) Create(c *gin.Context) {
	var req RegistrationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	id, err := h.service.Create(c, req.toInput())
	if err != nil {
		h.handleError(c, err, "Create", "Failed to create registration")
		return
	}
	logger.WithComponent("handler").Info("Registration created", zap.Int("registration_id", id))
	respondCreated(c, id)
}

func (h *RegistrationHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "registration")
	if !ok {
		return
	}
	var req RegistrationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.service.Update(c, id, req.toInput()); err != nil {
		h.handleError(c, err, "Update", "Failed to update registration")
		return
	}
	respondMessage(c, "Registration updated")
}

func (h *RegistrationHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "registration")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete", "Failed to delete registration")
		return
	}
	respondMessage(c, "Registration deleted")
}

func (h *RegistrationHandler) handleError(c *gin.Context, err error, operation, fallback string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrRegistrationNotFound):
		log.Warn("Registration not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		// 報名引用的活動不存在屬於輸入錯誤
		log.Warn("Referenced event not found")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrMissingRequiredFields):
		log.Warn("Missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "participant_name, email and event_id or event_title are required"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid status")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
