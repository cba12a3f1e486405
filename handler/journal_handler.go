package handler

import (
	"strconv"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

const defaultJournalLimit = 50

type JournalHandler struct {
	service *usecase.JournalService
}

func NewJournalHandler(service *usecase.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

func (h *JournalHandler) CreateEntry(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		Title   string   `json:"title" binding:"required"`
		Content string   `json:"content"`
		Mood    string   `json:"mood"`
		Tags    []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entry := &model.JournalEntry{
		UserID:  uid,
		Title:   req.Title,
		Content: req.Content,
		Mood:    model.Mood(req.Mood),
		Tags:    req.Tags,
	}

	if err := h.service.CreateEntry(c.Request.Context(), entry); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToJournalEntryResponse(entry))
}

func (h *JournalHandler) GetUserEntries(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	limit := int64(defaultJournalLimit)
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			utils.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := h.service.GetUserEntries(c.Request.Context(), uid, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToJournalEntryResponses(entries))
}

func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var updates model.JournalEntry
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateEntry(c.Request.Context(), c.Param("id"), uid, &updates); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Journal entry updated"})
}

func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), c.Param("id"), uid); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Journal entry deleted"})
}
