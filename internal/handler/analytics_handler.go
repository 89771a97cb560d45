package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focusboard/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) Overview(c *gin.Context) {
	analytics, apiErr := h.analyticsService.Overview(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analytics": analytics})
}
