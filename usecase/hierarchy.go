package usecase

import (
	"context"
	"log"

	"main/dto"
	"main/model"
	"main/utils"
)

// HierarchyService batch-fetches the Pillar -> Area -> Project -> Task
// hierarchy and computes roll-up aggregates in memory. Database round trips
// are bounded by the number of hierarchy levels requested, never by the
// number of entities. Aggregates are recomputed on every read; nothing here
// is persisted.
type HierarchyService struct {
	Pillars  PillarStore
	Areas    AreaStore
	Projects ProjectStore
	Tasks    TaskStore
}

// FetchOptions controls list requests. Aggregates are always computed;
// the include flags only control whether child objects are embedded.
type FetchOptions struct {
	IncludeChildren bool
	IncludeArchived bool
}

// ListPillars returns every pillar for the user with task roll-ups summed
// from areas, which sum from projects, which count live task rows.
func (svc *HierarchyService) ListPillars(ctx context.Context, userID string, opts FetchOptions) ([]dto.PillarResponse, error) {
	pillars, err := svc.Pillars.GetUserPillars(ctx, userID, opts.IncludeArchived)
	if err != nil {
		return nil, err
	}
	if len(pillars) == 0 {
		return []dto.PillarResponse{}, nil
	}

	pillarIDs := make([]string, 0, len(pillars))
	for _, p := range pillars {
		pillarIDs = append(pillarIDs, p.PillarID)
	}

	// One batched query per level below pillars. A failure at any level
	// degrades that subtree to empty aggregates instead of failing the
	// whole request.
	areas, err := svc.Areas.GetAreasByPillarIDs(ctx, userID, pillarIDs)
	if err != nil {
		log.Printf("warning: degraded pillar aggregation for user %s, areas fetch failed: %v", userID, err)
		utils.TrackError("aggregation", "areas_level_failed")
		areas = nil
	}
	areaResponses := svc.buildAreaLevel(ctx, userID, areas, opts)

	areasByPillar := make(map[string][]dto.AreaResponse)
	for _, ar := range areaResponses {
		if ar.PillarID != nil {
			areasByPillar[*ar.PillarID] = append(areasByPillar[*ar.PillarID], ar)
		}
	}

	responses := make([]dto.PillarResponse, 0, len(pillars))
	for _, pillar := range pillars {
		response := dto.ToPillarResponse(pillar)
		children := areasByPillar[pillar.PillarID]

		response.AreaCount = len(children)
		for _, area := range children {
			response.ProjectCount += area.ProjectCount
			response.TaskCount += area.TotalTaskCount
			response.CompletedTaskCount += area.CompletedTaskCount
		}
		response.ProgressPercentage = percentage(response.CompletedTaskCount, response.TaskCount)

		if opts.IncludeChildren {
			response.Areas = children
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// ListAreas returns every area for the user, including areas with no linked
// pillar, with project/task roll-ups attached.
func (svc *HierarchyService) ListAreas(ctx context.Context, userID string, opts FetchOptions) ([]dto.AreaResponse, error) {
	areas, err := svc.Areas.GetUserAreas(ctx, userID, opts.IncludeArchived)
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		return []dto.AreaResponse{}, nil
	}
	return svc.buildAreaLevel(ctx, userID, areas, opts), nil
}

// buildAreaLevel attaches project and task aggregates to a set of areas using
// one batched query per level.
func (svc *HierarchyService) buildAreaLevel(ctx context.Context, userID string, areas []*model.Area, opts FetchOptions) []dto.AreaResponse {
	if len(areas) == 0 {
		return []dto.AreaResponse{}
	}

	areaIDs := make([]string, 0, len(areas))
	for _, a := range areas {
		areaIDs = append(areaIDs, a.AreaID)
	}

	projects, err := svc.Projects.GetProjectsByAreaIDs(ctx, userID, areaIDs)
	if err != nil {
		log.Printf("warning: degraded area aggregation for user %s, projects fetch failed: %v", userID, err)
		utils.TrackError("aggregation", "projects_level_failed")
		projects = nil
	}
	projectResponses := svc.buildProjectLevel(ctx, userID, projects, opts)

	projectsByArea := make(map[string][]dto.ProjectResponse)
	for _, pr := range projectResponses {
		if pr.AreaID != nil {
			projectsByArea[*pr.AreaID] = append(projectsByArea[*pr.AreaID], pr)
		}
	}

	responses := make([]dto.AreaResponse, 0, len(areas))
	for _, area := range areas {
		response := dto.ToAreaResponse(area)
		children := projectsByArea[area.AreaID]

		response.ProjectCount = len(children)
		for _, project := range children {
			if project.Status == model.ProjectCompleted {
				response.CompletedProjectCount++
			}
			response.TotalTaskCount += project.TaskCount
			response.CompletedTaskCount += project.CompletedTaskCount
		}
		response.ProgressPercentage = percentage(response.CompletedTaskCount, response.TotalTaskCount)

		if opts.IncludeChildren {
			response.Projects = children
		}
		responses = append(responses, response)
	}
	return responses
}

// ListProjects returns every project for the user, including projects whose
// area has since been deleted, with task counts attached.
func (svc *HierarchyService) ListProjects(ctx context.Context, userID string, opts FetchOptions) ([]dto.ProjectResponse, error) {
	projects, err := svc.Projects.GetUserProjects(ctx, userID, opts.IncludeArchived)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return []dto.ProjectResponse{}, nil
	}
	return svc.buildProjectLevel(ctx, userID, projects, opts), nil
}

// buildProjectLevel attaches task aggregates to a set of projects with a
// single batched task query.
func (svc *HierarchyService) buildProjectLevel(ctx context.Context, userID string, projects []*model.Project, opts FetchOptions) []dto.ProjectResponse {
	if len(projects) == 0 {
		return []dto.ProjectResponse{}
	}

	projectIDs := make([]string, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ProjectID)
	}

	tasks, err := svc.Tasks.GetTasksByProjectIDs(ctx, userID, projectIDs)
	if err != nil {
		log.Printf("warning: degraded project aggregation for user %s, tasks fetch failed: %v", userID, err)
		utils.TrackError("aggregation", "tasks_level_failed")
		tasks = nil
	}

	tasksByProject := make(map[string][]*model.Task)
	for _, task := range tasks {
		tasksByProject[task.ProjectID] = append(tasksByProject[task.ProjectID], task)
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		response := dto.ToProjectResponse(project)
		children := tasksByProject[project.ProjectID]

		response.TaskCount = len(children)
		for _, task := range children {
			if task.Completed {
				response.CompletedTaskCount++
			}
		}
		response.CompletionPercentage = percentage(response.CompletedTaskCount, response.TaskCount)

		if opts.IncludeChildren {
			response.Tasks = dto.ToTaskResponses(children)
		}
		responses = append(responses, response)
	}
	return responses
}

// GetPillar returns one pillar with full aggregates.
func (svc *HierarchyService) GetPillar(ctx context.Context, userID, pillarID string) (*dto.PillarResponse, error) {
	pillar, err := svc.Pillars.GetPillarByID(ctx, userID, pillarID)
	if err != nil {
		return nil, err
	}
	if pillar == nil {
		return nil, model.NewNotFoundError("pillar", pillarID)
	}

	areas, err := svc.Areas.GetAreasByPillarIDs(ctx, userID, []string{pillar.PillarID})
	if err != nil {
		log.Printf("warning: degraded pillar aggregation for user %s: %v", userID, err)
		utils.TrackError("aggregation", "areas_level_failed")
		areas = nil
	}

	response := dto.ToPillarResponse(pillar)
	children := svc.buildAreaLevel(ctx, userID, areas, FetchOptions{IncludeChildren: true})
	response.AreaCount = len(children)
	for _, area := range children {
		response.ProjectCount += area.ProjectCount
		response.TaskCount += area.TotalTaskCount
		response.CompletedTaskCount += area.CompletedTaskCount
	}
	response.ProgressPercentage = percentage(response.CompletedTaskCount, response.TaskCount)
	response.Areas = children
	return &response, nil
}

// GetArea returns one area with full aggregates.
func (svc *HierarchyService) GetArea(ctx context.Context, userID, areaID string) (*dto.AreaResponse, error) {
	area, err := svc.Areas.GetAreaByID(ctx, userID, areaID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, model.NewNotFoundError("area", areaID)
	}
	responses := svc.buildAreaLevel(ctx, userID, []*model.Area{area}, FetchOptions{IncludeChildren: true})
	return &responses[0], nil
}

// GetProject returns one project with its tasks and aggregates.
func (svc *HierarchyService) GetProject(ctx context.Context, userID, projectID string) (*dto.ProjectResponse, error) {
	project, err := svc.Projects.GetProjectByID(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, model.NewNotFoundError("project", projectID)
	}
	responses := svc.buildProjectLevel(ctx, userID, []*model.Project{project}, FetchOptions{IncludeChildren: true})
	return &responses[0], nil
}

// percentage returns completed/total*100, exactly 0.0 when total is zero.
func percentage(completed, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(completed) / float64(total) * 100.0
}
