package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"
)

func seedHierarchy(t *testing.T) (*HierarchyService, *fakeTaskStore) {
	t.Helper()

	pillars := newFakePillarStore()
	areas := newFakeAreaStore()
	projects := newFakeProjectStore()
	tasks := newFakeTaskStore()

	pillars.pillars["pil-1"] = &model.Pillar{PillarID: "pil-1", UserID: "user-1", Name: "Health"}
	pillars.pillars["pil-2"] = &model.Pillar{PillarID: "pil-2", UserID: "user-1", Name: "Career", Archived: true}

	areas.areas["area-1"] = &model.Area{AreaID: "area-1", UserID: "user-1", PillarID: strPtr("pil-1"), Name: "Fitness"}
	areas.areas["area-2"] = &model.Area{AreaID: "area-2", UserID: "user-1", Name: "Unlinked"}

	projects.projects["proj-1"] = &model.Project{
		ProjectID: "proj-1", UserID: "user-1", AreaID: strPtr("area-1"),
		Name: "Marathon", Status: model.ProjectInProgress,
	}
	projects.projects["proj-2"] = &model.Project{
		ProjectID: "proj-2", UserID: "user-1", AreaID: strPtr("area-1"),
		Name: "Stretching", Status: model.ProjectCompleted,
	}

	tasks.tasks["task-1"] = &model.Task{TaskID: "task-1", UserID: "user-1", ProjectID: "proj-1", Name: "Long run"}
	tasks.tasks["task-2"] = &model.Task{TaskID: "task-2", UserID: "user-1", ProjectID: "proj-1", Name: "Intervals", Completed: true, Status: model.TaskStatusCompleted}
	tasks.tasks["task-3"] = &model.Task{TaskID: "task-3", UserID: "user-1", ProjectID: "proj-1", Name: "Tempo run", Completed: true, Status: model.TaskStatusCompleted}
	tasks.tasks["task-4"] = &model.Task{TaskID: "task-4", UserID: "user-1", ProjectID: "proj-2", Name: "Hamstrings", Completed: true, Status: model.TaskStatusCompleted}

	return &HierarchyService{Pillars: pillars, Areas: areas, Projects: projects, Tasks: tasks}, tasks
}

func TestListPillarsAggregates(t *testing.T) {
	svc, _ := seedHierarchy(t)

	got, err := svc.ListPillars(context.Background(), "user-1", FetchOptions{IncludeChildren: true})
	if err != nil {
		t.Fatalf("ListPillars failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 pillar (archived excluded), got %d", len(got))
	}

	pillar := got[0]
	if pillar.AreaCount != 1 {
		t.Errorf("AreaCount = %d, want 1", pillar.AreaCount)
	}
	if pillar.ProjectCount != 2 {
		t.Errorf("ProjectCount = %d, want 2", pillar.ProjectCount)
	}
	if pillar.TaskCount != 4 {
		t.Errorf("TaskCount = %d, want 4", pillar.TaskCount)
	}
	if pillar.CompletedTaskCount != 3 {
		t.Errorf("CompletedTaskCount = %d, want 3", pillar.CompletedTaskCount)
	}
	if pillar.ProgressPercentage != 75.0 {
		t.Errorf("ProgressPercentage = %v, want 75.0", pillar.ProgressPercentage)
	}
	if len(pillar.Areas) != 1 {
		t.Fatalf("expected embedded areas, got %d", len(pillar.Areas))
	}

	area := pillar.Areas[0]
	if area.CompletedProjectCount != 1 {
		t.Errorf("CompletedProjectCount = %d, want 1", area.CompletedProjectCount)
	}
	if area.TotalTaskCount != 4 || area.CompletedTaskCount != 3 {
		t.Errorf("area task counts = %d/%d, want 4/3", area.CompletedTaskCount, area.TotalTaskCount)
	}
}

func TestListPillarsIncludeArchived(t *testing.T) {
	svc, _ := seedHierarchy(t)

	got, err := svc.ListPillars(context.Background(), "user-1", FetchOptions{IncludeArchived: true})
	if err != nil {
		t.Fatalf("ListPillars failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 pillars with archived included, got %d", len(got))
	}
}

func TestListPillarsOmitsChildrenByDefault(t *testing.T) {
	svc, _ := seedHierarchy(t)

	got, err := svc.ListPillars(context.Background(), "user-1", FetchOptions{})
	if err != nil {
		t.Fatalf("ListPillars failed: %v", err)
	}
	if got[0].Areas != nil {
		t.Errorf("expected no embedded areas, got %d", len(got[0].Areas))
	}
	if got[0].TaskCount != 4 {
		t.Errorf("aggregates must be computed even without children, TaskCount = %d", got[0].TaskCount)
	}
}

func TestListPillarsRepeatedFetchIsStable(t *testing.T) {
	svc, _ := seedHierarchy(t)
	ctx := context.Background()

	first, err := svc.ListPillars(ctx, "user-1", FetchOptions{})
	if err != nil {
		t.Fatalf("first ListPillars failed: %v", err)
	}
	second, err := svc.ListPillars(ctx, "user-1", FetchOptions{})
	if err != nil {
		t.Fatalf("second ListPillars failed: %v", err)
	}
	if first[0].TaskCount != second[0].TaskCount ||
		first[0].CompletedTaskCount != second[0].CompletedTaskCount ||
		first[0].ProgressPercentage != second[0].ProgressPercentage {
		t.Errorf("aggregates changed between identical reads: %+v vs %+v", first[0], second[0])
	}
}

func TestListAreasIncludesUnlinked(t *testing.T) {
	svc, _ := seedHierarchy(t)

	got, err := svc.ListAreas(context.Background(), "user-1", FetchOptions{})
	if err != nil {
		t.Fatalf("ListAreas failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 areas including the unlinked one, got %d", len(got))
	}

	var unlinked bool
	for _, area := range got {
		if area.PillarID == nil {
			unlinked = true
			if area.ProjectCount != 0 || area.ProgressPercentage != 0.0 {
				t.Errorf("empty area must report zero aggregates, got %+v", area)
			}
		}
	}
	if !unlinked {
		t.Error("unlinked area missing from list")
	}
}

func TestListProjectsTaskCounts(t *testing.T) {
	svc, _ := seedHierarchy(t)

	got, err := svc.ListProjects(context.Background(), "user-1", FetchOptions{})
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}

	byID := make(map[string]float64)
	for _, p := range got {
		byID[p.ID] = p.CompletionPercentage
	}
	if byID["proj-1"] < 66.0 || byID["proj-1"] > 67.0 {
		t.Errorf("proj-1 completion = %v, want ~66.7", byID["proj-1"])
	}
	if byID["proj-2"] != 100.0 {
		t.Errorf("proj-2 completion = %v, want 100.0", byID["proj-2"])
	}
}

func TestHierarchyDegradesOnTaskFetchFailure(t *testing.T) {
	svc, tasks := seedHierarchy(t)
	tasks.err = errors.New("collection scan failed")

	got, err := svc.ListPillars(context.Background(), "user-1", FetchOptions{})
	if err != nil {
		t.Fatalf("ListPillars must not fail when a sub-query fails: %v", err)
	}
	if got[0].TaskCount != 0 || got[0].ProgressPercentage != 0.0 {
		t.Errorf("degraded pillar must report zero task aggregates, got %+v", got[0])
	}
	// The structural counts above the failed level survive.
	if got[0].AreaCount != 1 {
		t.Errorf("AreaCount = %d, want 1", got[0].AreaCount)
	}
}

func TestGetPillarNotFound(t *testing.T) {
	svc, _ := seedHierarchy(t)

	_, err := svc.GetPillar(context.Background(), "user-1", "missing")
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGetPillarScopedToUser(t *testing.T) {
	svc, _ := seedHierarchy(t)

	_, err := svc.GetPillar(context.Background(), "someone-else", "pil-1")
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError for foreign user, got %v", err)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{"zero total", 0, 0, 0.0},
		{"zero completed", 0, 4, 0.0},
		{"half", 2, 4, 50.0},
		{"full", 4, 4, 100.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentage(tt.completed, tt.total); got != tt.want {
				t.Errorf("percentage(%d, %d) = %v, want %v", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}
