package model

import "time"

// Attachment holds file metadata only. The storage path/URL is opaque;
// object storage itself lives behind an external service.
type Attachment struct {
	AttachmentID string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	ParentType   string    `bson:"parent_type" json:"parent_type"` // pillar, area, project, task, journal_entry
	ParentID     string    `bson:"parent_id" json:"parent_id"`
	FileName     string    `bson:"file_name" json:"file_name" binding:"required"`
	MimeType     string    `bson:"mime_type" json:"mime_type"`
	SizeBytes    int64     `bson:"size_bytes" json:"size_bytes"`
	StoragePath  string    `bson:"storage_path" json:"storage_path"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
