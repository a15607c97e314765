package handler

import (
	"net/http"

	"github.com/AFSHAL-7/trustlens/internal/middleware"
	"github.com/AFSHAL-7/trustlens/internal/service"
	"github.com/gin-gonic/gin"
)

// StatsHandler 仪表盘统计接口
type StatsHandler struct {
	service *service.StatsService
}

func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get 查询当前用户的聚合统计
// GET /api/stats
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.service.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
