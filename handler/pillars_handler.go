package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type PillarHandler struct {
	service   *usecase.PillarService
	hierarchy *usecase.HierarchyService
}

func NewPillarHandler(service *usecase.PillarService, hierarchy *usecase.HierarchyService) *PillarHandler {
	return &PillarHandler{service: service, hierarchy: hierarchy}
}

func (h *PillarHandler) CreatePillar(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		Name                     string   `json:"name" binding:"required"`
		Description              string   `json:"description"`
		Icon                     string   `json:"icon"`
		Color                    string   `json:"color" binding:"omitempty,hexcolor_custom"`
		SortOrder                int      `json:"sort_order"`
		TimeAllocationPercentage *float64 `json:"time_allocation_percentage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pillar := &model.Pillar{
		UserID:                   uid,
		Name:                     req.Name,
		Description:              req.Description,
		Icon:                     req.Icon,
		Color:                    req.Color,
		SortOrder:                req.SortOrder,
		TimeAllocationPercentage: req.TimeAllocationPercentage,
	}

	if err := h.service.CreatePillar(c.Request.Context(), pillar); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, pillar)
}

// GetUserPillars lists pillars with aggregates. Query flags: include_areas
// embeds the child areas, include_archived includes soft-deleted rows.
func (h *PillarHandler) GetUserPillars(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	opts := usecase.FetchOptions{
		IncludeChildren: c.Query("include_areas") == "true",
		IncludeArchived: c.Query("include_archived") == "true",
	}
	pillars, err := h.hierarchy.ListPillars(c.Request.Context(), uid, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, pillars)
}

func (h *PillarHandler) GetPillar(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	pillar, err := h.hierarchy.GetPillar(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, pillar)
}

func (h *PillarHandler) UpdatePillar(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var updates model.Pillar
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	pillar, err := h.service.UpdatePillar(c.Request.Context(), c.Param("id"), uid, &updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, pillar)
}

func (h *PillarHandler) DeletePillar(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePillar(c.Request.Context(), c.Param("id"), uid); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Pillar deleted, linked areas kept"})
}
