package dto

import (
	"time"

	"main/model"
)

type NotificationResponse struct {
	ID        string                 `json:"id"`
	Type      model.NotificationType `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message,omitempty"`
	TaskID    string                 `json:"task_id,omitempty"`
	ProjectID string                 `json:"project_id,omitempty"`
	Read      bool                   `json:"read"`
	CreatedAt time.Time              `json:"created_at"`
}

func ToNotificationResponse(n *model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.NotificationID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		TaskID:    n.TaskID,
		ProjectID: n.ProjectID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func ToNotificationResponses(notifications []*model.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = ToNotificationResponse(n)
	}
	return responses
}

type AttachmentResponse struct {
	ID          string    `json:"id"`
	ParentType  string    `json:"parent_type"`
	ParentID    string    `json:"parent_id"`
	FileName    string    `json:"file_name"`
	MimeType    string    `json:"mime_type"`
	SizeBytes   int64     `json:"size_bytes"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToAttachmentResponse(a *model.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          a.AttachmentID,
		ParentType:  a.ParentType,
		ParentID:    a.ParentID,
		FileName:    a.FileName,
		MimeType:    a.MimeType,
		SizeBytes:   a.SizeBytes,
		StoragePath: a.StoragePath,
		CreatedAt:   a.CreatedAt,
	}
}

func ToAttachmentResponses(attachments []*model.Attachment) []AttachmentResponse {
	responses := make([]AttachmentResponse, len(attachments))
	for i, a := range attachments {
		responses[i] = ToAttachmentResponse(a)
	}
	return responses
}
