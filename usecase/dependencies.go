package usecase

import (
	"context"
	"log"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

// DependencyResolver gates task status transitions on prerequisite completion
// and detects newly unblocked tasks when a prerequisite completes.
type DependencyResolver struct {
	Tasks       TaskStore
	Projects    ProjectStore
	Preferences PreferencesStore
	Publisher   EventPublisher
}

// gatedStatuses are the transitions that require all dependencies complete.
var gatedStatuses = map[model.TaskStatus]bool{
	model.TaskStatusInProgress: true,
	model.TaskStatusReview:     true,
	model.TaskStatusCompleted:  true,
}

// ValidateTransition fails with a DependencyError when the requested status
// (or completion) would advance the task while any dependency is missing or
// incomplete. The error carries the names of the blocking tasks.
func (r *DependencyResolver) ValidateTransition(ctx context.Context, task *model.Task, requestedStatus model.TaskStatus, completing bool) error {
	if !completing && !gatedStatuses[requestedStatus] {
		return nil
	}
	if len(task.DependencyTaskIDs) == 0 {
		return nil
	}

	deps, err := r.Tasks.GetTasksByIDs(ctx, task.UserID, task.DependencyTaskIDs)
	if err != nil {
		return err
	}

	depsByID := make(map[string]*model.Task, len(deps))
	for _, dep := range deps {
		depsByID[dep.TaskID] = dep
	}

	var blocking []string
	for _, depID := range task.DependencyTaskIDs {
		dep := depsByID[depID]
		switch {
		case dep == nil:
			// Dangling reference: counts as unmet until cleaned up.
			blocking = append(blocking, "unknown task "+depID)
		case !dep.Completed:
			blocking = append(blocking, dep.Name)
		}
	}

	if len(blocking) > 0 {
		utils.TrackError("dependency", "transition_blocked")
		return &model.DependencyError{Blocking: blocking}
	}
	return nil
}

// ValidateDependencyList rejects self-dependencies and references to
// nonexistent tasks at the time dependencies are set, not when they are
// later evaluated.
func (r *DependencyResolver) ValidateDependencyList(ctx context.Context, userID, taskID string, depIDs []string) error {
	if len(depIDs) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(depIDs))
	for _, depID := range depIDs {
		if depID == taskID {
			return model.NewValidationError("a task cannot depend on itself")
		}
		if seen[depID] {
			return model.NewValidationError("duplicate dependency %s", depID)
		}
		seen[depID] = true
	}

	deps, err := r.Tasks.GetTasksByIDs(ctx, userID, depIDs)
	if err != nil {
		return err
	}
	found := make(map[string]bool, len(deps))
	for _, dep := range deps {
		found[dep.TaskID] = true
	}
	for _, depID := range depIDs {
		if !found[depID] {
			return model.NewValidationError("dependency task %s does not exist", depID)
		}
	}
	return nil
}

// NotifyUnblocked scans for incomplete tasks that depended on the just
// completed task and, for each whose dependencies are now all satisfied,
// emits an unblocked event. Entirely best-effort: failures are logged and
// swallowed, never surfaced to the completion caller.
func (r *DependencyResolver) NotifyUnblocked(ctx context.Context, completed *model.Task) {
	if r.Publisher == nil {
		return
	}
	prefs, err := r.Preferences.GetPreferences(ctx, completed.UserID)
	if err == nil && !prefs.NotifyOnUnblocked {
		return
	}

	dependents, err := r.Tasks.GetDependents(ctx, completed.UserID, completed.TaskID)
	if err != nil {
		log.Printf("warning: unblocked scan failed for task %s: %v", completed.TaskID, err)
		utils.TrackError("dependency", "unblocked_scan_failed")
		return
	}
	if len(dependents) == 0 {
		return
	}

	// Re-check each dependent against one batched fetch of all their
	// dependencies.
	idSet := make(map[string]bool)
	for _, dependent := range dependents {
		for _, depID := range dependent.DependencyTaskIDs {
			idSet[depID] = true
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	deps, err := r.Tasks.GetTasksByIDs(ctx, completed.UserID, ids)
	if err != nil {
		log.Printf("warning: unblocked dependency fetch failed for task %s: %v", completed.TaskID, err)
		utils.TrackError("dependency", "unblocked_scan_failed")
		return
	}
	depsByID := make(map[string]*model.Task, len(deps))
	for _, dep := range deps {
		depsByID[dep.TaskID] = dep
	}

	for _, dependent := range dependents {
		if !dependenciesMet(dependent, depsByID) {
			continue
		}
		projectName := ""
		if project, err := r.Projects.GetProjectByID(ctx, completed.UserID, dependent.ProjectID); err == nil && project != nil {
			projectName = project.Name
		}

		event := &model.Event{
			EventID:   uuid.New().String(),
			UserID:    completed.UserID,
			Type:      model.NotificationTaskUnblocked,
			Title:     "Task unblocked: " + dependent.Name,
			Message:   unblockedMessage(dependent.Name, projectName),
			TaskID:    dependent.TaskID,
			ProjectID: dependent.ProjectID,
			EmittedAt: time.Now(),
		}
		if err := r.Publisher.Publish(ctx, event); err != nil {
			log.Printf("warning: failed to publish unblocked event for task %s: %v", dependent.TaskID, err)
			utils.TrackOutboxEvent("publish_failed")
			continue
		}
		utils.TrackOutboxEvent("published")
	}
}

func unblockedMessage(taskName, projectName string) string {
	if projectName == "" {
		return "All prerequisites for \"" + taskName + "\" are complete. You can start it now."
	}
	return "All prerequisites for \"" + taskName + "\" in " + projectName + " are complete. You can start it now."
}
