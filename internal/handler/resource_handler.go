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

type ResourceHandler struct {
	service service.ResourceService
}

func NewResourceHandler(service service.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

func (h *ResourceHandler) RegisterRoutes(r *gin.RouterGroup) {
	router := r.Group("/resources")
	{
		router.GET("", h.List)
		router.GET("/:id", h.GetByID)
		router.POST("", h.Create)
		router.PUT("/:id", h.Update)
		router.DELETE("/:id", h.Delete)
	}
}

type ResourceRequest struct {
	Name              string                  `json:"name"`
	Category          *string                 `json:"category"`
	TotalQuantity     int                     `json:"total_quantity"`
	AvailableQuantity int                     `json:"available_quantity"`
	Location          *string                 `json:"location"`
	Condition         model.ResourceCondition `json:"condition"`
	Status            model.ResourceStatus    `json:"status"`
}

func (req ResourceRequest) toModel() *model.Resource {
	return &model.Resource{
		Name:              req.Name,
		Category:          req.Category,
		TotalQuantity:     req.TotalQuantity,
		AvailableQuantity: req.AvailableQuantity,
		Location:          req.Location,
		Condition:         req.Condition,
		Status:            req.Status,
	}
}

func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List", "Failed to load resources")
		return
	}
	c.JSON(http.StatusOK, resources)
}

func (h *ResourceHandler) GetByID(c *gin.Context) {
	id, ok := ParseID(c, "resource")
	if !ok {
		return
	}
	resource, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID", "Failed to load resource")
		return
	}
	c.JSON(http.StatusOK, resource)
}

func (h *ResourceHandler) Create(c *gin.Context) {
	var req ResourceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	id, err := h.service.Create(c, req.toModel())
	if err != nil {
		h.handleError(c, err, "Create", "Failed to create resource")
		return
	}
	logger.WithComponent("handler").Info("Resource created", zap.Int("resource_id", id))
	respondCreated(c, id)
}

func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "resource")
	if !ok {
		return
	}
	var req ResourceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.service.Update(c, id, req.toModel()); err != nil {
		h.handleError(c, err, "Update", "Failed to update resource")
		return
	}
	respondMessage(c, "Resource updated")
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "resource")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete", "Failed to delete resource")
		return
	}
	respondMessage(c, "Resource deleted")
}

func (h *ResourceHandler) handleError(c *gin.Context, err error, operation, fallback string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		log.Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid condition or status")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid condition or status"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
