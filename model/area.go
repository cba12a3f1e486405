package model

import "time"

// Area belongs to zero-or-one pillar. Deleting an area unlinks its projects
// (area_id set null).
type Area struct {
	AreaID      string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	PillarID    *string   `bson:"pillar_id,omitempty" json:"pillar_id,omitempty"`
	Name        string    `bson:"name" json:"name" binding:"required"`
	Description string    `bson:"description,omitempty" json:"description"`
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Color       string    `bson:"color,omitempty" json:"color,omitempty"`
	Importance  int       `bson:"importance" json:"importance"` // ordinal 1-5
	SortOrder   int       `bson:"sort_order" json:"sort_order"`
	Archived    bool      `bson:"archived" json:"archived"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
