package usecase

import (
	"context"
	"log"
	"time"

	"main/model"
	"main/utils"
)

// InsightsService computes the analytics report from live rows. Like the
// hierarchy roll-ups, nothing here is persisted.
type InsightsService struct {
	Hierarchy   *HierarchyService
	Tasks       TaskStore
	Journal     JournalStore
	Preferences PreferencesStore
}

const DefaultInsightsWindowDays = 30

func (svc *InsightsService) GetInsights(ctx context.Context, userID string, windowDays int) (*model.InsightsReport, error) {
	if windowDays <= 0 {
		windowDays = DefaultInsightsWindowDays
	}

	prefs, err := svc.Preferences.GetPreferences(ctx, userID)
	if err != nil {
		prefs = model.DefaultPreferences(userID)
	}
	loc := userLocation(prefs.Timezone)
	now := time.Now().In(loc)

	report := &model.InsightsReport{
		GeneratedAt: now,
		WindowDays:  windowDays,
		MoodCounts:  map[string]int{},
	}

	tasks, err := svc.Tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	trend := make(map[string]int)
	windowStart := now.AddDate(0, 0, -windowDays)
	for _, task := range tasks {
		report.TaskStats.Total++
		if task.Completed {
			report.TaskStats.Completed++
			if task.CompletedAt != nil && task.CompletedAt.After(windowStart.UTC()) {
				trend[task.CompletedAt.In(loc).Format("2006-01-02")]++
			}
			continue
		}
		report.TaskStats.Pending++
		if !task.DueDate.IsZero() {
			switch compareDays(task.DueDate.In(loc), now) {
			case -1:
				report.TaskStats.Overdue++
			case 0:
				report.TaskStats.DueToday++
			}
		}
	}

	report.CompletionTrend = make([]model.DailyCompletion, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		report.CompletionTrend = append(report.CompletionTrend, model.DailyCompletion{
			Date:      day,
			Completed: trend[day],
		})
	}

	// Per-pillar completion reuses the hierarchy roll-ups.
	pillars, err := svc.Hierarchy.ListPillars(ctx, userID, FetchOptions{})
	if err != nil {
		log.Printf("warning: degraded insights for user %s, pillar roll-up failed: %v", userID, err)
		utils.TrackError("aggregation", "insights_pillars_failed")
	} else {
		report.PillarStats = make([]model.PillarCompletion, 0, len(pillars))
		for _, pillar := range pillars {
			report.PillarStats = append(report.PillarStats, model.PillarCompletion{
				PillarID:             pillar.ID,
				Name:                 pillar.Name,
				TaskCount:            pillar.TaskCount,
				CompletedTaskCount:   pillar.CompletedTaskCount,
				CompletionPercentage: percentage(pillar.CompletedTaskCount, pillar.TaskCount),
			})
		}
	}

	entries, err := svc.Journal.GetUserEntries(ctx, userID, 0)
	if err != nil {
		log.Printf("warning: degraded insights for user %s, journal fetch failed: %v", userID, err)
		utils.TrackError("aggregation", "insights_journal_failed")
	} else {
		for _, entry := range entries {
			if entry.Mood != "" && entry.CreatedAt.After(windowStart.UTC()) {
				report.MoodCounts[string(entry.Mood)]++
			}
		}
	}

	return report, nil
}
