package handler

import (
	"time"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	service *usecase.TaskService
}

func NewTaskHandler(service *usecase.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		Name                      string     `json:"name" binding:"required"`
		Description               string     `json:"description"`
		ProjectID                 string     `json:"project_id" binding:"required"`
		ParentTaskID              *string    `json:"parent_task_id"`
		Status                    string     `json:"status"`
		Priority                  string     `json:"priority"`
		DueDate                   *time.Time `json:"due_date"`
		DueTime                   string     `json:"due_time"`
		DependencyTaskIDs         []string   `json:"dependency_task_ids"`
		KanbanColumn              string     `json:"kanban_column"`
		SortOrder                 int        `json:"sort_order"`
		EstimatedDuration         int        `json:"estimated_duration"`
		SubTaskCompletionRequired *bool      `json:"sub_task_completion_required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task := &model.Task{
		UserID:                    uid,
		Name:                      req.Name,
		Description:               req.Description,
		ProjectID:                 req.ProjectID,
		ParentTaskID:              req.ParentTaskID,
		Status:                    model.NormalizeTaskStatus(req.Status),
		Priority:                  model.NormalizePriority(req.Priority),
		DueTime:                   req.DueTime,
		DependencyTaskIDs:         req.DependencyTaskIDs,
		KanbanColumn:              req.KanbanColumn,
		SortOrder:                 req.SortOrder,
		EstimatedDuration:         req.EstimatedDuration,
		SubTaskCompletionRequired: req.SubTaskCompletionRequired,
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}

	if err := h.service.CreateTask(c.Request.Context(), task); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToTaskResponse(task))
}

func (h *TaskHandler) GetUserTasks(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	tasks, err := h.service.GetUserTasks(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTaskResponses(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	task, err := h.service.GetTask(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var updates model.Task
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), c.Param("id"), uid, &updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTaskResponse(task))
}

// ToggleComplete flips the completion flag, running the same dependency and
// sub-task checks as a status update.
func (h *TaskHandler) ToggleComplete(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	task, err := h.service.ToggleComplete(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTaskResponse(task))
}

func (h *TaskHandler) SetDependencies(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		DependencyTaskIDs []string `json:"dependency_task_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.service.SetDependencies(c.Request.Context(), c.Param("id"), uid, req.DependencyTaskIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), c.Param("id"), uid); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Task and its sub-tasks deleted"})
}
