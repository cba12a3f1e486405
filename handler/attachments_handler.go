package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AttachmentHandler struct {
	service *usecase.AttachmentService
}

func NewAttachmentHandler(service *usecase.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{service: service}
}

// CreateAttachment records file metadata. The file bytes themselves live in
// external storage; storage_path is an opaque reference.
func (h *AttachmentHandler) CreateAttachment(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		ParentType  string `json:"parent_type" binding:"required"`
		ParentID    string `json:"parent_id" binding:"required"`
		FileName    string `json:"file_name" binding:"required"`
		MimeType    string `json:"mime_type"`
		SizeBytes   int64  `json:"size_bytes"`
		StoragePath string `json:"storage_path"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	attachment := &model.Attachment{
		UserID:      uid,
		ParentType:  req.ParentType,
		ParentID:    req.ParentID,
		FileName:    req.FileName,
		MimeType:    req.MimeType,
		SizeBytes:   req.SizeBytes,
		StoragePath: req.StoragePath,
	}

	if err := h.service.CreateAttachment(c.Request.Context(), attachment); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToAttachmentResponse(attachment))
}

func (h *AttachmentHandler) GetUserAttachments(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	attachments, err := h.service.GetUserAttachments(
		c.Request.Context(), uid, c.Query("parent_type"), c.Query("parent_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToAttachmentResponses(attachments))
}

func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAttachment(c.Request.Context(), c.Param("id"), uid); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Attachment deleted"})
}
