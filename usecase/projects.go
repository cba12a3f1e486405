package usecase

import (
	"context"
	"log"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

// ProjectService owns project writes. A project requires an area at creation
// time; deleting a project cascades to all of its tasks.
type ProjectService struct {
	Projects ProjectStore
	Areas    AreaStore
	Tasks    TaskStore
}

func (svc *ProjectService) CreateProject(ctx context.Context, project *model.Project) error {
	if project.UserID == "" {
		return model.NewValidationError("user ID is required")
	}
	if project.Name == "" {
		return model.NewValidationError("project name is required")
	}
	if project.AreaID == nil || *project.AreaID == "" {
		return model.NewValidationError("area ID is required")
	}
	if err := validateImportance(project.Importance); err != nil {
		return err
	}

	area, err := svc.Areas.GetAreaByID(ctx, project.UserID, *project.AreaID)
	if err != nil {
		return err
	}
	if area == nil {
		return model.NewNotFoundError("area", *project.AreaID)
	}

	if project.ProjectID == "" {
		project.ProjectID = uuid.New().String()
	}
	if project.Status == "" {
		project.Status = model.ProjectNotStarted
	}
	if !project.Status.Valid() {
		return model.NewValidationError("invalid status %q", string(project.Status))
	}
	if project.Priority == "" {
		project.Priority = model.PriorityMedium
	}
	if !project.Priority.Valid() {
		return model.NewValidationError("invalid priority %q", string(project.Priority))
	}
	if project.Importance == 0 {
		project.Importance = 3
	}

	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	return svc.Projects.CreateProject(ctx, project)
}

func (svc *ProjectService) UpdateProject(ctx context.Context, projectID, userID string, updates *model.Project) (*model.Project, error) {
	existing, err := svc.Projects.GetProjectByID(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.NewNotFoundError("project", projectID)
	}

	if updates.Name == "" {
		updates.Name = existing.Name
	}
	if updates.AreaID == nil {
		updates.AreaID = existing.AreaID
	}
	if updates.Status == "" {
		updates.Status = existing.Status
	}
	updates.Status = model.NormalizeProjectStatus(string(updates.Status))
	if updates.Priority == "" {
		updates.Priority = existing.Priority
	}
	updates.Priority = model.NormalizePriority(string(updates.Priority))
	if updates.Importance == 0 {
		updates.Importance = existing.Importance
	}
	if err := validateImportance(updates.Importance); err != nil {
		return nil, err
	}

	if updates.AreaID != nil && (existing.AreaID == nil || *updates.AreaID != *existing.AreaID) {
		area, err := svc.Areas.GetAreaByID(ctx, userID, *updates.AreaID)
		if err != nil {
			return nil, err
		}
		if area == nil {
			return nil, model.NewNotFoundError("area", *updates.AreaID)
		}
	}

	if err := svc.Projects.UpdateProject(ctx, projectID, userID, updates); err != nil {
		return nil, err
	}
	return svc.Projects.GetProjectByID(ctx, userID, projectID)
}

// DeleteProject removes the project and every task under it, then cleans up
// dependency references to the removed tasks. The writes are independent
// with no rollback; partial completion is accepted.
func (svc *ProjectService) DeleteProject(ctx context.Context, projectID, userID string) error {
	if err := svc.Projects.DeleteProject(ctx, projectID, userID); err != nil {
		return err
	}

	removed, err := svc.Tasks.DeleteTasksByProjectID(ctx, userID, projectID)
	if err != nil {
		log.Printf("warning: task cascade failed for deleted project %s: %v", projectID, err)
		utils.TrackError("cascade", "project_task_cascade_failed")
		return nil
	}
	if err := svc.Tasks.PullDependencyRefs(ctx, userID, removed); err != nil {
		log.Printf("warning: dependency cleanup failed for deleted project %s: %v", projectID, err)
		utils.TrackError("cascade", "project_dependency_cleanup_failed")
	}
	return nil
}
