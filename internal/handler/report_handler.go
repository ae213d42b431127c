package handler

import (
	"net/http"

	"schedulink-backend/internal/service"
	"schedulink-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	router := r.Group("/reports")
	{
		router.GET("/events", h.EventReports)
		router.GET("/dashboard", h.Dashboard)
	}
}

func (h *ReportHandler) EventReports(c *gin.Context) {
	reports, err := h.service.EventReports(c)
	if err != nil {
		logger.WithComponent("handler").Error("Failed to load event reports",
			zap.String("operation", "EventReports"), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.DashboardStats(c)
	if err != nil {
		logger.WithComponent("handler").Error("Failed to load dashboard statistics",
			zap.String("operation", "Dashboard"), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
