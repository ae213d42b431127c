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

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	router := r.Group("/notifications")
	{
		router.GET("", h.List)
		router.GET("/:id", h.GetByID)
		router.POST("", h.Create)
		router.PUT("/:id", h.Update)
		router.PUT("/:id/status", h.UpdateStatus)
		router.PUT("/:id/approve", h.Approve)
		router.PUT("/:id/decline", h.Decline)
		router.DELETE("/:id", h.Delete)
	}
}

type NotificationRequest struct {
	EventID int                      `json:"event_id"`
	Message string                   `json:"message"`
	Status  model.NotificationStatus `json:"status"`
}

func (req NotificationRequest) toModel() *model.Notification {
	return &model.Notification{
		EventID: req.EventID,
		Message: req.Message,
		Status:  req.Status,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List", "Failed to load notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) GetByID(c *gin.Context) {
	id, ok := ParseID(c, "notification")
	if !ok {
		return
	}
	notification, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID", "Failed to load notification")
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req NotificationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	id, err := h.service.Create(c, req.toModel())
	if err != nil {
		h.handleError(c, err, "Create", "Failed to create notification")
		return
	}
	logger.WithComponent("handler").Info("Notification created", zap.Int("notification_id", id))
	respondCreated(c, id)
}

func (h *NotificationHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "notification")
	if !ok {
		return
	}
	var req NotificationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.service.Update(c, id, req.toModel()); err != nil {
		h.handleError(c, err, "Update", "Failed to update notification")
		return
	}
	respondMessage(c, "Notification updated")
}

func (h *NotificationHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParseID(c, "notification")
	if !ok {
		return
	}
	var req StatusRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	h.setStatus(c, id, model.NotificationStatus(req.Status), "UpdateStatus", "Notification status updated")
}

func (h *NotificationHandler) Approve(c *gin.Context) {
	id, ok := ParseID(c, "notification")
	if !ok {
		return
	}
	h.setStatus(c, id, model.NotificationStatusApproved, "Approve", "Notification approved")
}

func (h *NotificationHandler) Decline(c *gin.Context) {
	id, ok := ParseID(c, "notification")
	if !ok {
		return
	}
	h.setStatus(c, id, model.NotificationStatusDeclined, "Decline", "Notification declined")
}

func (h *NotificationHandler) setStatus(c *gin.Context, id int, status model.NotificationStatus, operation, message string) {
	if err := h.service.UpdateStatus(c, id, status); err != nil {
		h.handleError(c, err, operation, "Failed to update notification status")
		return
	}
	respondMessage(c, message)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "notification")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete", "Failed to delete notification")
		return
	}
	respondMessage(c, "Notification deleted")
}

func (h *NotificationHandler) handleError(c *gin.Context, err error, operation, fallback string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrNotificationNotFound):
		log.Warn("Notification not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Referenced event not found")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrMissingRequiredFields):
		log.Warn("Missing status")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid status")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
