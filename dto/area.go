package dto

import (
	"time"

	"main/model"
)

// AreaResponse carries the area row plus roll-ups summed from its projects'
// task aggregates.
type AreaResponse struct {
	ID                    string            `json:"id"`
	PillarID              *string           `json:"pillar_id,omitempty"`
	Name                  string            `json:"name"`
	Description           string            `json:"description,omitempty"`
	Icon                  string            `json:"icon,omitempty"`
	Color                 string            `json:"color,omitempty"`
	Importance            int               `json:"importance"`
	SortOrder             int               `json:"sort_order"`
	Archived              bool              `json:"archived"`
	ProjectCount          int               `json:"project_count"`
	CompletedProjectCount int               `json:"completed_project_count"`
	TotalTaskCount        int               `json:"total_task_count"`
	CompletedTaskCount    int               `json:"completed_task_count"`
	ProgressPercentage    float64           `json:"progress_percentage"`
	Projects              []ProjectResponse `json:"projects,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

func ToAreaResponse(area *model.Area) AreaResponse {
	return AreaResponse{
		ID:          area.AreaID,
		PillarID:    area.PillarID,
		Name:        area.Name,
		Description: area.Description,
		Icon:        area.Icon,
		Color:       area.Color,
		Importance:  area.Importance,
		SortOrder:   area.SortOrder,
		Archived:    area.Archived,
		CreatedAt:   area.CreatedAt,
		UpdatedAt:   area.UpdatedAt,
	}
}
