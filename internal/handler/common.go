package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// ParseID 解析路徑上的 :id，格式錯誤回應 400
// 超出 SERIAL (int4) 範圍的正整數不可能存在，直接回應 404
func ParseID(c *gin.Context, entity string) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		c.JSON(http.StatusNotFound, gin.H{
			"error": strings.ToUpper(entity[:1]) + entity[1:] + " not found",
		})
		return 0, false
	}
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + entity + " id",
		})
		return 0, false
	}
	return int(id), true
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func respondCreated(c *gin.Context, id int) {
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// StatusRequest 狀態變更請求
type StatusRequest struct {
	Status string `json:"status"`
}
