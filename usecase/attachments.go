package usecase

import (
	"context"
	"time"

	"main/model"

	"github.com/google/uuid"
)

var attachmentParentTypes = map[string]bool{
	"pillar":        true,
	"area":          true,
	"project":       true,
	"task":          true,
	"journal_entry": true,
}

// AttachmentService manages attachment metadata only; the bytes live in an
// external object store addressed by the opaque storage path.
type AttachmentService struct {
	Attachments AttachmentStore
}

func (svc *AttachmentService) CreateAttachment(ctx context.Context, a *model.Attachment) error {
	if a.UserID == "" {
		return model.NewValidationError("user ID is required")
	}
	if a.FileName == "" {
		return model.NewValidationError("file name is required")
	}
	if !attachmentParentTypes[a.ParentType] {
		return model.NewValidationError("invalid parent type %q", a.ParentType)
	}
	if a.ParentID == "" {
		return model.NewValidationError("parent ID is required")
	}
	if a.StoragePath == "" {
		return model.NewValidationError("storage path is required")
	}

	if a.AttachmentID == "" {
		a.AttachmentID = uuid.New().String()
	}
	a.CreatedAt = time.Now()

	return svc.Attachments.CreateAttachment(ctx, a)
}

func (svc *AttachmentService) GetUserAttachments(ctx context.Context, userID, parentType, parentID string) ([]*model.Attachment, error) {
	if parentType != "" && !attachmentParentTypes[parentType] {
		return nil, model.NewValidationError("invalid parent type %q", parentType)
	}
	return svc.Attachments.GetUserAttachments(ctx, userID, parentType, parentID)
}

func (svc *AttachmentService) DeleteAttachment(ctx context.Context, attachmentID, userID string) error {
	return svc.Attachments.DeleteAttachment(ctx, attachmentID, userID)
}
