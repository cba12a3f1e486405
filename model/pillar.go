package model

import "time"

// Pillar is a top-level life area. Deleting a pillar unlinks its areas
// (pillar_id set null) rather than cascading.
type Pillar struct {
	PillarID                 string    `bson:"_id,omitempty" json:"id"`
	UserID                   string    `bson:"user_id" json:"user_id"`
	Name                     string    `bson:"name" json:"name" binding:"required"`
	Description              string    `bson:"description,omitempty" json:"description"`
	Icon                     string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Color                    string    `bson:"color,omitempty" json:"color,omitempty"`
	SortOrder                int       `bson:"sort_order" json:"sort_order"`
	Archived                 bool      `bson:"archived" json:"archived"`
	TimeAllocationPercentage *float64  `bson:"time_allocation_percentage,omitempty" json:"time_allocation_percentage,omitempty"`
	CreatedAt                time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt                time.Time `bson:"updated_at" json:"updated_at"`
}
