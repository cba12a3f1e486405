package model

import "time"

type Mood string

const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodLow     Mood = "low"
	MoodBad     Mood = "bad"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodNeutral, MoodLow, MoodBad:
		return true
	}
	return false
}

type JournalEntry struct {
	EntryID   string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Title     string    `bson:"title" json:"title" binding:"required"`
	Content   string    `bson:"content,omitempty" json:"content"`
	Mood      Mood      `bson:"mood,omitempty" json:"mood,omitempty"`
	Tags      []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
