package model

import "time"

// InsightsReport is the analytics payload for GET /api/insights. Everything
// here is recomputed from live rows, mirroring the no-stored-aggregates rule.
type InsightsReport struct {
	TaskStats struct {
		Total      int `json:"total"`
		Completed  int `json:"completed"`
		Pending    int `json:"pending"`
		Overdue    int `json:"overdue"`
		DueToday   int `json:"due_today"`
	} `json:"task_stats"`
	CompletionTrend []DailyCompletion    `json:"completion_trend"`
	PillarStats     []PillarCompletion   `json:"pillar_stats"`
	MoodCounts      map[string]int       `json:"mood_counts"`
	GeneratedAt     time.Time            `json:"generated_at"`
	WindowDays      int                  `json:"window_days"`
}

type DailyCompletion struct {
	Date      string `json:"date"` // YYYY-MM-DD in the user's timezone
	Completed int    `json:"completed"`
}

type PillarCompletion struct {
	PillarID             string  `json:"pillar_id"`
	Name                 string  `json:"name"`
	TaskCount            int     `json:"task_count"`
	CompletedTaskCount   int     `json:"completed_task_count"`
	CompletionPercentage float64 `json:"completion_percentage"`
}
