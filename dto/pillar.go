package dto

import (
	"time"

	"main/model"
)

// PillarResponse carries the pillar row plus roll-ups summed from its areas.
type PillarResponse struct {
	ID                       string         `json:"id"`
	Name                     string         `json:"name"`
	Description              string         `json:"description,omitempty"`
	Icon                     string         `json:"icon,omitempty"`
	Color                    string         `json:"color,omitempty"`
	SortOrder                int            `json:"sort_order"`
	Archived                 bool           `json:"archived"`
	TimeAllocationPercentage *float64       `json:"time_allocation_percentage,omitempty"`
	AreaCount                int            `json:"area_count"`
	ProjectCount             int            `json:"project_count"`
	TaskCount                int            `json:"task_count"`
	CompletedTaskCount       int            `json:"completed_task_count"`
	ProgressPercentage       float64        `json:"progress_percentage"`
	Areas                    []AreaResponse `json:"areas,omitempty"`
	CreatedAt                time.Time      `json:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at"`
}

func ToPillarResponse(pillar *model.Pillar) PillarResponse {
	return PillarResponse{
		ID:                       pillar.PillarID,
		Name:                     pillar.Name,
		Description:              pillar.Description,
		Icon:                     pillar.Icon,
		Color:                    pillar.Color,
		SortOrder:                pillar.SortOrder,
		Archived:                 pillar.Archived,
		TimeAllocationPercentage: pillar.TimeAllocationPercentage,
		CreatedAt:                pillar.CreatedAt,
		UpdatedAt:                pillar.UpdatedAt,
	}
}
