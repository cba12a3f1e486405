package model

import "time"

// Project belongs to an area (nullable only after the area is deleted, which
// unlinks rather than cascades). Deleting a project cascades to its tasks.
// CompletionPercentage is derived from live task rows, never authoritative.
type Project struct {
	ProjectID   string        `bson:"_id,omitempty" json:"id"`
	UserID      string        `bson:"user_id" json:"user_id"`
	AreaID      *string       `bson:"area_id,omitempty" json:"area_id,omitempty"`
	Name        string        `bson:"name" json:"name" binding:"required"`
	Description string        `bson:"description,omitempty" json:"description"`
	Status      ProjectStatus `bson:"status" json:"status"`
	Priority    Priority      `bson:"priority" json:"priority"`
	Importance  int           `bson:"importance" json:"importance"` // ordinal 1-5
	Deadline    time.Time     `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Archived    bool          `bson:"archived" json:"archived"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}
