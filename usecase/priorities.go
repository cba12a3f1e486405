package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"main/dto"
	"main/model"
	"main/utils"
)

// Score weights for the prioritization rubric. Components are independent;
// a task's score is their plain sum.
const (
	ScoreOverdue           = 100
	ScoreDueToday          = 80
	ScoreHighPriority      = 30
	ScoreProjectImportance = 50
	ScoreAreaImportance    = 25
	ScoreDependenciesMet   = 60

	// Projects and areas at or above this importance contribute points.
	importanceThreshold = 4

	DefaultCoachingTopN = 3
)

// PriorityService scores a user's incomplete active tasks and produces a
// descending-priority ordering with an explainable score breakdown. All
// hierarchy lookups are batch-fetched once up front, one query per level.
type PriorityService struct {
	Tasks       TaskStore
	Projects    ProjectStore
	Areas       AreaStore
	Preferences PreferencesStore
	Coach       Coach
}

// TodayPriorities computes today's prioritized task list. When withCoaching
// is set the top-N tasks are annotated with an LLM coaching message; the
// annotation is best-effort and never fails the request.
func (svc *PriorityService) TodayPriorities(ctx context.Context, userID string, topN int, withCoaching bool) (*dto.TodayResponse, error) {
	prefs, err := svc.Preferences.GetPreferences(ctx, userID)
	if err != nil {
		log.Printf("warning: preferences fetch failed for user %s, using defaults: %v", userID, err)
		prefs = model.DefaultPreferences(userID)
	}

	loc := userLocation(prefs.Timezone)
	today := time.Now().In(loc)

	tasks, err := svc.Tasks.GetActiveTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := &dto.TodayResponse{
		Date:     today.Format("2006-01-02"),
		Timezone: loc.String(),
		Tasks:    []dto.ScoredTaskResponse{},
	}
	if len(tasks) == 0 {
		return response, nil
	}

	// Batch the hierarchy context: one query per level, never per task.
	projectsByID := svc.projectIndex(ctx, userID)
	areasByID := svc.areaIndex(ctx, userID)
	depsByID := svc.dependencyIndex(ctx, userID, tasks)

	scored := make([]dto.ScoredTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		entry := svc.scoreTask(task, today, projectsByID, areasByID, depsByID)
		scored = append(scored, entry)
	}

	// Descending by score; ties keep their prior ordering.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if withCoaching && prefs.CoachingEnabled {
		if topN <= 0 {
			topN = prefs.CoachingTopN
		}
		if topN <= 0 {
			topN = DefaultCoachingTopN
		}
		svc.annotateTop(ctx, scored, topN)
	}

	response.Tasks = scored
	return response, nil
}

func (svc *PriorityService) scoreTask(
	task *model.Task,
	today time.Time,
	projectsByID map[string]*model.Project,
	areasByID map[string]*model.Area,
	depsByID map[string]*model.Task,
) dto.ScoredTaskResponse {
	entry := dto.ScoredTaskResponse{
		Task:    dto.ToTaskResponse(task),
		Reasons: []string{},
	}

	// Urgency: due dates are stored UTC and compared as calendar days in
	// the user's timezone.
	if !task.DueDate.IsZero() {
		due := task.DueDate.In(today.Location())
		switch compareDays(due, today) {
		case -1:
			entry.Score += ScoreOverdue
			entry.Reasons = append(entry.Reasons, "Overdue")
		case 0:
			entry.Score += ScoreDueToday
			entry.Reasons = append(entry.Reasons, "Due today")
		}
	}

	if task.Priority == model.PriorityHigh {
		entry.Score += ScoreHighPriority
		entry.Reasons = append(entry.Reasons, "High priority")
	}

	project := projectsByID[task.ProjectID]
	if project != nil {
		entry.ProjectName = project.Name
		if project.Importance >= importanceThreshold {
			entry.Score += ScoreProjectImportance
			entry.Reasons = append(entry.Reasons, "Part of key project: "+project.Name)
		}
		if project.AreaID != nil {
			if area := areasByID[*project.AreaID]; area != nil {
				entry.AreaName = area.Name
				if area.Importance >= importanceThreshold {
					entry.Score += ScoreAreaImportance
					entry.Reasons = append(entry.Reasons, "Important area: "+area.Name)
				}
			}
		}
	}

	if dependenciesMet(task, depsByID) {
		entry.Score += ScoreDependenciesMet
		entry.Reasons = append(entry.Reasons, "Ready to start, no blockers")
	}

	return entry
}

// annotateTop attaches coaching messages to the first n entries. Any failure
// leaves the entry with a null message and ai_powered=false.
func (svc *PriorityService) annotateTop(ctx context.Context, scored []dto.ScoredTaskResponse, n int) {
	if svc.Coach == nil {
		utils.TrackCoachingRequest("disabled")
		return
	}
	if n > len(scored) {
		n = len(scored)
	}
	for i := 0; i < n; i++ {
		message, err := svc.Coach.CoachingMessage(ctx, scored[i].Task.Name, scored[i].ProjectName, scored[i].Reasons)
		if err != nil {
			log.Printf("warning: coaching message failed for task %s: %v", scored[i].Task.ID, err)
			utils.TrackCoachingRequest("failure")
			continue
		}
		scored[i].CoachingMessage = &message
		scored[i].AIPowered = true
		utils.TrackCoachingRequest("success")
	}
}

func (svc *PriorityService) projectIndex(ctx context.Context, userID string) map[string]*model.Project {
	projects, err := svc.Projects.GetUserProjects(ctx, userID, true)
	if err != nil {
		log.Printf("warning: degraded scoring for user %s, projects fetch failed: %v", userID, err)
		utils.TrackError("aggregation", "scoring_projects_failed")
		return map[string]*model.Project{}
	}
	index := make(map[string]*model.Project, len(projects))
	for _, p := range projects {
		index[p.ProjectID] = p
	}
	return index
}

func (svc *PriorityService) areaIndex(ctx context.Context, userID string) map[string]*model.Area {
	areas, err := svc.Areas.GetUserAreas(ctx, userID, true)
	if err != nil {
		log.Printf("warning: degraded scoring for user %s, areas fetch failed: %v", userID, err)
		utils.TrackError("aggregation", "scoring_areas_failed")
		return map[string]*model.Area{}
	}
	index := make(map[string]*model.Area, len(areas))
	for _, a := range areas {
		index[a.AreaID] = a
	}
	return index
}

// dependencyIndex batch-fetches every task referenced as a dependency by the
// given set, in a single query.
func (svc *PriorityService) dependencyIndex(ctx context.Context, userID string, tasks []*model.Task) map[string]*model.Task {
	idSet := make(map[string]bool)
	for _, task := range tasks {
		for _, depID := range task.DependencyTaskIDs {
			idSet[depID] = true
		}
	}
	if len(idSet) == 0 {
		return map[string]*model.Task{}
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	deps, err := svc.Tasks.GetTasksByIDs(ctx, userID, ids)
	if err != nil {
		log.Printf("warning: degraded scoring for user %s, dependency fetch failed: %v", userID, err)
		utils.TrackError("aggregation", "scoring_dependencies_failed")
		return map[string]*model.Task{}
	}

	index := make(map[string]*model.Task, len(deps))
	for _, dep := range deps {
		index[dep.TaskID] = dep
	}
	return index
}

// dependenciesMet reports whether every dependency references a completed
// task. An empty list counts as met; a dangling reference does not.
func dependenciesMet(task *model.Task, depsByID map[string]*model.Task) bool {
	for _, depID := range task.DependencyTaskIDs {
		dep := depsByID[depID]
		if dep == nil || !dep.Completed {
			return false
		}
	}
	return true
}

// compareDays returns -1/0/1 as a's calendar day is before/equal/after b's,
// both interpreted in b's location.
func compareDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		if ay < by {
			return -1
		}
		return 1
	case am != bm:
		if am < bm {
			return -1
		}
		return 1
	case ad != bd:
		if ad < bd {
			return -1
		}
		return 1
	}
	return 0
}

// userLocation loads the stored timezone preference, falling back to UTC
// when it is missing or invalid.
func userLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("warning: invalid timezone %q, falling back to UTC", name)
		return time.UTC
	}
	return loc
}
