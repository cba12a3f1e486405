package model

import "time"

// Preferences is a per-user settings record. Timezone is an IANA name used
// when computing "today" for prioritization; invalid or missing values fall
// back to UTC.
type Preferences struct {
	UserID               string    `bson:"_id" json:"user_id"`
	Timezone             string    `bson:"timezone,omitempty" json:"timezone"`
	CoachingEnabled      bool      `bson:"coaching_enabled" json:"coaching_enabled"`
	CoachingTopN         int       `bson:"coaching_top_n,omitempty" json:"coaching_top_n"`
	NotifyOnUnblocked    bool      `bson:"notify_on_unblocked" json:"notify_on_unblocked"`
	NotifyOnAchievements bool      `bson:"notify_on_achievements" json:"notify_on_achievements"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updated_at"`
}

// DefaultPreferences returns the settings for a user with no stored record.
func DefaultPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:               userID,
		Timezone:             "UTC",
		CoachingEnabled:      true,
		CoachingTopN:         3,
		NotifyOnUnblocked:    true,
		NotifyOnAchievements: true,
	}
}
