package dto

import (
	"time"

	"main/model"
)

type JournalEntryResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content,omitempty"`
	Mood      model.Mood `json:"mood,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToJournalEntryResponse(entry *model.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		ID:        entry.EntryID,
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
		Tags:      entry.Tags,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

func ToJournalEntryResponses(entries []*model.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToJournalEntryResponse(entry)
	}
	return responses
}
