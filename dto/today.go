package dto

// ScoredTaskResponse is a prioritized task with its explainable score
// breakdown. CoachingMessage is only present when the LLM annotation
// succeeded; AIPowered is false whenever it did not.
type ScoredTaskResponse struct {
	Task            TaskResponse `json:"task"`
	Score           int          `json:"score"`
	Reasons         []string     `json:"reasons"`
	ProjectName     string       `json:"project_name,omitempty"`
	AreaName        string       `json:"area_name,omitempty"`
	CoachingMessage *string      `json:"coaching_message"`
	AIPowered       bool         `json:"ai_powered"`
}

type TodayResponse struct {
	Date     string               `json:"date"` // YYYY-MM-DD in the user's timezone
	Timezone string               `json:"timezone"`
	Tasks    []ScoredTaskResponse `json:"tasks"`
}
