package usecase

import (
	"context"
	"time"

	"main/model"

	"github.com/google/uuid"
)

type JournalService struct {
	Journal JournalStore
}

func (svc *JournalService) CreateEntry(ctx context.Context, entry *model.JournalEntry) error {
	if entry.UserID == "" {
		return model.NewValidationError("user ID is required")
	}
	if entry.Title == "" {
		return model.NewValidationError("entry title is required")
	}
	if entry.Mood != "" && !entry.Mood.Valid() {
		return model.NewValidationError("invalid mood %q", string(entry.Mood))
	}

	if entry.EntryID == "" {
		entry.EntryID = uuid.New().String()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	return svc.Journal.CreateEntry(ctx, entry)
}

func (svc *JournalService) GetUserEntries(ctx context.Context, userID string, limit int64) ([]*model.JournalEntry, error) {
	return svc.Journal.GetUserEntries(ctx, userID, limit)
}

func (svc *JournalService) UpdateEntry(ctx context.Context, entryID, userID string, updates *model.JournalEntry) error {
	if updates.Title == "" {
		return model.NewValidationError("entry title is required")
	}
	if updates.Mood != "" && !updates.Mood.Valid() {
		return model.NewValidationError("invalid mood %q", string(updates.Mood))
	}
	return svc.Journal.UpdateEntry(ctx, entryID, userID, updates)
}

func (svc *JournalService) DeleteEntry(ctx context.Context, entryID, userID string) error {
	return svc.Journal.DeleteEntry(ctx, entryID, userID)
}
