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

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup) {
	router := r.Group("/events")
	{
		router.GET("", h.List)
		router.GET("/:id", h.GetByID)
		router.POST("", h.Create)
		router.PUT("/:id", h.Update)
		router.PUT("/:id/status", h.UpdateStatus)
		router.DELETE("/:id", h.Delete)
	}
}

// EventRequest 建立與更新活動共用；更新時為整筆覆寫，未提供的欄位寫入 NULL
type EventRequest struct {
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Location    *string           `json:"location"`
	Capacity    *int              `json:"capacity"`
	OrganizerID *int              `json:"organizer_id"`
	Status      model.EventStatus `json:"status"`
}

func (req EventRequest) toModel() *model.Event {
	return &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Capacity:    req.Capacity,
		OrganizerID: req.OrganizerID,
		Status:      req.Status,
	}
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List", "Failed to load events")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := ParseID(c, "event")
	if !ok {
		return
	}
	event, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID", "Failed to load event")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req EventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	id, err := h.service.Create(c, req.toModel())
	if err != nil {
		h.handleError(c, err, "Create", "Failed to create event")
		return
	}
	logger.WithComponent("handler").Info("Event created", zap.Int("event_id", id))
	respondCreated(c, id)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "event")
	if !ok {
		return
	}
	var req EventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.service.Update(c, id, req.toModel()); err != nil {
		h.handleError(c, err, "Update", "Failed to update event")
		return
	}
	respondMessage(c, "Event updated")
}

func (h *EventHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParseID(c, "event")
	if !ok {
		return
	}
	var req StatusRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.service.UpdateStatus(c, id, model.EventStatus(req.Status)); err != nil {
		h.handleError(c, err, "UpdateStatus", "Failed to update event status")
		return
	}
	respondMessage(c, "Event status updated")
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "event")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete", "Failed to delete event")
		return
	}
	respondMessage(c, "Event deleted")
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation, fallback string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("Organizer not found")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organizer not found"})
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
