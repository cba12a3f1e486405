package usecase

import (
	"context"
	"log"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

// TaskService enforces task invariants on every write: the completed flag and
// completed status stay consistent, gated transitions require met
// dependencies, and sub-task completion requirements hold in both directions.
type TaskService struct {
	Tasks    TaskStore
	Projects ProjectStore
	Resolver *DependencyResolver
}

func (svc *TaskService) CreateTask(ctx context.Context, task *model.Task) error {
	if task.UserID == "" {
		return model.NewValidationError("user ID is required")
	}
	if task.Name == "" {
		return model.NewValidationError("task name is required")
	}
	if task.ProjectID == "" {
		return model.NewValidationError("project ID is required")
	}

	project, err := svc.Projects.GetProjectByID(ctx, task.UserID, task.ProjectID)
	if err != nil {
		return err
	}
	if project == nil {
		return model.NewNotFoundError("project", task.ProjectID)
	}

	if task.ParentTaskID != nil {
		parent, err := svc.Tasks.GetTaskByID(ctx, task.UserID, *task.ParentTaskID)
		if err != nil {
			return err
		}
		if parent == nil {
			return model.NewNotFoundError("parent task", *task.ParentTaskID)
		}
	}

	if task.TaskID == "" {
		task.TaskID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = model.TaskStatusTodo
	}
	if !task.Status.Valid() {
		return model.NewValidationError("invalid status %q", string(task.Status))
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if !task.Priority.Valid() {
		return model.NewValidationError("invalid priority %q", string(task.Priority))
	}

	if err := svc.Resolver.ValidateDependencyList(ctx, task.UserID, task.TaskID, task.DependencyTaskIDs); err != nil {
		return err
	}

	syncCompletion(task, nil)

	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	return svc.Tasks.CreateTask(ctx, task)
}

// UpdateTask applies a full-document update, enforcing every transition
// invariant against the stored state.
func (svc *TaskService) UpdateTask(ctx context.Context, taskID, userID string, updates *model.Task) (*model.Task, error) {
	existing, err := svc.Tasks.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.NewNotFoundError("task", taskID)
	}

	updates.TaskID = taskID
	updates.UserID = userID
	if updates.ProjectID == "" {
		updates.ProjectID = existing.ProjectID
	}
	if updates.Name == "" {
		updates.Name = existing.Name
	}
	if updates.Status == "" {
		updates.Status = existing.Status
	}
	updates.Status = model.NormalizeTaskStatus(string(updates.Status))
	if updates.Priority == "" {
		updates.Priority = existing.Priority
	}
	updates.Priority = model.NormalizePriority(string(updates.Priority))
	if updates.ParentTaskID == nil {
		updates.ParentTaskID = existing.ParentTaskID
	}
	if updates.DependencyTaskIDs == nil {
		updates.DependencyTaskIDs = existing.DependencyTaskIDs
	}
	if updates.SubTaskCompletionRequired == nil {
		updates.SubTaskCompletionRequired = existing.SubTaskCompletionRequired
	}
	updates.CreatedAt = existing.CreatedAt

	// The flag and the status imply each other.
	syncCompletion(updates, existing)

	completing := updates.Completed && !existing.Completed
	uncompleting := !updates.Completed && existing.Completed

	// Gate against the merged document, not the stored one: the same update
	// may change the dependency list and the status together.
	if changed := updates.Status != existing.Status; changed || completing {
		if err := svc.Resolver.ValidateTransition(ctx, updates, updates.Status, completing); err != nil {
			return nil, err
		}
	}

	if completing && updates.RequiresSubTaskCompletion() {
		incomplete, err := svc.incompleteSubTasks(ctx, userID, taskID)
		if err != nil {
			return nil, err
		}
		if incomplete > 0 {
			return nil, model.NewValidationError("cannot complete task: %d sub-tasks are still incomplete", incomplete)
		}
	}

	if !depListEqual(updates.DependencyTaskIDs, existing.DependencyTaskIDs) {
		if err := svc.Resolver.ValidateDependencyList(ctx, userID, taskID, updates.DependencyTaskIDs); err != nil {
			return nil, err
		}
	}

	if err := svc.Tasks.UpdateTask(ctx, taskID, userID, updates); err != nil {
		return nil, err
	}

	if completing {
		// Best-effort side effect; never surfaced to the caller.
		svc.Resolver.NotifyUnblocked(ctx, updates)
	}
	if uncompleting {
		svc.uncompleteParents(ctx, userID, updates.ParentTaskID)
	}

	return svc.Tasks.GetTaskByID(ctx, userID, taskID)
}

// ToggleComplete flips the completed flag, routing through UpdateTask so all
// invariants apply.
func (svc *TaskService) ToggleComplete(ctx context.Context, taskID, userID string) (*model.Task, error) {
	existing, err := svc.Tasks.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.NewNotFoundError("task", taskID)
	}

	updates := *existing
	updates.Completed = !existing.Completed
	if updates.Completed {
		updates.Status = model.TaskStatusCompleted
	} else {
		updates.Status = model.TaskStatusTodo
		updates.CompletedAt = nil
	}
	return svc.UpdateTask(ctx, taskID, userID, &updates)
}

// SetDependencies replaces the dependency list after validating it.
func (svc *TaskService) SetDependencies(ctx context.Context, taskID, userID string, depIDs []string) (*model.Task, error) {
	existing, err := svc.Tasks.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.NewNotFoundError("task", taskID)
	}

	if err := svc.Resolver.ValidateDependencyList(ctx, userID, taskID, depIDs); err != nil {
		return nil, err
	}

	updates := *existing
	updates.DependencyTaskIDs = depIDs
	if err := svc.Tasks.UpdateTask(ctx, taskID, userID, &updates); err != nil {
		return nil, err
	}
	return svc.Tasks.GetTaskByID(ctx, userID, taskID)
}

// DeleteTask removes the task and cascades to its sub-task tree, then pulls
// the removed ids from every other task's dependency list so no dangling
// references remain.
func (svc *TaskService) DeleteTask(ctx context.Context, taskID, userID string) error {
	existing, err := svc.Tasks.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return err
	}
	if existing == nil {
		return model.NewNotFoundError("task", taskID)
	}

	removed := []string{taskID}
	frontier := []string{taskID}
	for len(frontier) > 0 {
		var next []string
		for _, parentID := range frontier {
			children, err := svc.Tasks.GetSubTasks(ctx, userID, parentID)
			if err != nil {
				return err
			}
			for _, child := range children {
				removed = append(removed, child.TaskID)
				next = append(next, child.TaskID)
			}
		}
		frontier = next
	}

	if err := svc.Tasks.DeleteTasksByIDs(ctx, userID, removed); err != nil {
		return err
	}

	// Cleanup is best-effort; the delete itself has already happened.
	if err := svc.Tasks.PullDependencyRefs(ctx, userID, removed); err != nil {
		log.Printf("warning: dependency cleanup failed after deleting task %s: %v", taskID, err)
	}
	return nil
}

func (svc *TaskService) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	return svc.Tasks.GetUserTasks(ctx, userID)
}

func (svc *TaskService) GetTask(ctx context.Context, taskID, userID string) (*model.Task, error) {
	task, err := svc.Tasks.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, model.NewNotFoundError("task", taskID)
	}
	return task, nil
}

func (svc *TaskService) incompleteSubTasks(ctx context.Context, userID, taskID string) (int, error) {
	children, err := svc.Tasks.GetSubTasks(ctx, userID, taskID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, child := range children {
		if !child.Completed {
			count++
		}
	}
	return count, nil
}

// uncompleteParents walks upward: a completed parent that requires sub-task
// completion is automatically marked incomplete when a sub-task reopens.
// Best-effort; failures are logged.
func (svc *TaskService) uncompleteParents(ctx context.Context, userID string, parentID *string) {
	for parentID != nil {
		parent, err := svc.Tasks.GetTaskByID(ctx, userID, *parentID)
		if err != nil {
			log.Printf("warning: parent un-complete walk failed: %v", err)
			utils.TrackError("task", "parent_uncomplete_failed")
			return
		}
		if parent == nil || !parent.RequiresSubTaskCompletion() || !parent.Completed {
			return
		}

		updates := *parent
		updates.Completed = false
		updates.Status = model.TaskStatusInProgress
		updates.CompletedAt = nil
		if err := svc.Tasks.UpdateTask(ctx, parent.TaskID, userID, &updates); err != nil {
			log.Printf("warning: failed to un-complete parent task %s: %v", parent.TaskID, err)
			utils.TrackError("task", "parent_uncomplete_failed")
			return
		}
		parentID = parent.ParentTaskID
	}
}

// syncCompletion keeps the completed flag and status consistent in both
// directions, maintaining completed_at alongside.
func syncCompletion(task *model.Task, previous *model.Task) {
	statusCompleted := task.Status == model.TaskStatusCompleted

	if task.Completed || statusCompleted {
		task.Completed = true
		task.Status = model.TaskStatusCompleted
		if task.CompletedAt == nil {
			now := time.Now()
			task.CompletedAt = &now
		}
		return
	}

	task.CompletedAt = nil
	if previous != nil && previous.Completed && task.Status == model.TaskStatusCompleted {
		task.Status = model.TaskStatusTodo
	}
}

func depListEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
