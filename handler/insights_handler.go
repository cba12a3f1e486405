package handler

import (
	"strconv"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	service *usecase.InsightsService
}

func NewInsightsHandler(service *usecase.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

func (h *InsightsHandler) GetInsights(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	windowDays := usecase.DefaultInsightsWindowDays
	if raw := c.Query("window_days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 365 {
			utils.BadRequest(c, "window_days must be between 1 and 365")
			return
		}
		windowDays = n
	}

	report, err := h.service.GetInsights(c.Request.Context(), uid, windowDays)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, report)
}
