package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health 存活探針，不檢查下游依賴
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Backend is running",
	})
}
