package handler

import (
	"time"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	service   *usecase.ProjectService
	hierarchy *usecase.HierarchyService
}

func NewProjectHandler(service *usecase.ProjectService, hierarchy *usecase.HierarchyService) *ProjectHandler {
	return &ProjectHandler{service: service, hierarchy: hierarchy}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		Name        string     `json:"name" binding:"required"`
		Description string     `json:"description"`
		AreaID      *string    `json:"area_id" binding:"required"`
		Status      string     `json:"status"`
		Priority    string     `json:"priority"`
		Importance  int        `json:"importance"`
		Deadline    *time.Time `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project := &model.Project{
		UserID:      uid,
		Name:        req.Name,
		Description: req.Description,
		AreaID:      req.AreaID,
		Status:      model.NormalizeProjectStatus(req.Status),
		Priority:    model.NormalizePriority(req.Priority),
		Importance:  req.Importance,
	}
	if req.Deadline != nil {
		project.Deadline = *req.Deadline
	}

	if err := h.service.CreateProject(c.Request.Context(), project); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, project)
}

func (h *ProjectHandler) GetUserProjects(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	opts := usecase.FetchOptions{
		IncludeChildren: c.Query("include_tasks") == "true",
		IncludeArchived: c.Query("include_archived") == "true",
	}
	projects, err := h.hierarchy.ListProjects(c.Request.Context(), uid, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	project, err := h.hierarchy.GetProject(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var updates model.Project
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), c.Param("id"), uid, &updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, project)
}

// DeleteProject cascades: all tasks under the project are removed and any
// dependency references to them are cleaned up.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), c.Param("id"), uid); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Project and its tasks deleted"})
}
