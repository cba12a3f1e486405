package handler

import (
	"strconv"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TodayHandler struct {
	service *usecase.PriorityService
}

func NewTodayHandler(service *usecase.PriorityService) *TodayHandler {
	return &TodayHandler{service: service}
}

// GetToday returns the scored, ranked task list for the user's current day.
// coaching=true additionally annotates the top entries with AI messages,
// top=N overrides the preferred annotation count.
func (h *TodayHandler) GetToday(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	withCoaching := c.Query("coaching") == "true"
	topN := 0
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.BadRequest(c, "top must be a non-negative integer")
			return
		}
		topN = n
	}

	today, err := h.service.TodayPriorities(c.Request.Context(), uid, topN, withCoaching)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, today)
}
