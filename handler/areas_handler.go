package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AreaHandler struct {
	service   *usecase.AreaService
	hierarchy *usecase.HierarchyService
}

func NewAreaHandler(service *usecase.AreaService, hierarchy *usecase.HierarchyService) *AreaHandler {
	return &AreaHandler{service: service, hierarchy: hierarchy}
}

func (h *AreaHandler) CreateArea(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		PillarID    *string `json:"pillar_id"`
		Icon        string  `json:"icon"`
		Color       string  `json:"color" binding:"omitempty,hexcolor_custom"`
		Importance  int     `json:"importance"`
		SortOrder   int     `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	area := &model.Area{
		UserID:      uid,
		Name:        req.Name,
		Description: req.Description,
		PillarID:    req.PillarID,
		Icon:        req.Icon,
		Color:       req.Color,
		Importance:  req.Importance,
		SortOrder:   req.SortOrder,
	}

	if err := h.service.CreateArea(c.Request.Context(), area); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, area)
}

func (h *AreaHandler) GetUserAreas(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	opts := usecase.FetchOptions{
		IncludeChildren: c.Query("include_projects") == "true",
		IncludeArchived: c.Query("include_archived") == "true",
	}
	areas, err := h.hierarchy.ListAreas(c.Request.Context(), uid, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, areas)
}

func (h *AreaHandler) GetArea(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	area, err := h.hierarchy.GetArea(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, area)
}

func (h *AreaHandler) UpdateArea(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var updates model.Area
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	area, err := h.service.UpdateArea(c.Request.Context(), c.Param("id"), uid, &updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, area)
}

func (h *AreaHandler) DeleteArea(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteArea(c.Request.Context(), c.Param("id"), uid); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Area deleted, linked projects kept"})
}
