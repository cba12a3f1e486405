package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	service *usecase.PreferencesService
}

func NewPreferencesHandler(service *usecase.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{service: service}
}

// GetPreferences always returns a record: users without one get defaults.
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	prefs, err := h.service.GetPreferences(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, prefs)
}

func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req model.Preferences
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	prefs, err := h.service.UpdatePreferences(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, prefs)
}
