package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"
)

func projectFixture() (*ProjectService, *fakeProjectStore, *fakeAreaStore, *fakeTaskStore) {
	projects := newFakeProjectStore()
	areas := newFakeAreaStore()
	tasks := newFakeTaskStore()

	areas.areas["area-1"] = &model.Area{AreaID: "area-1", UserID: "user-1", Name: "Fitness"}

	svc := &ProjectService{Projects: projects, Areas: areas, Tasks: tasks}
	return svc, projects, areas, tasks
}

func TestCreateProjectRequiresArea(t *testing.T) {
	svc, _, _, _ := projectFixture()

	err := svc.CreateProject(context.Background(), &model.Project{UserID: "user-1", Name: "No area"})
	var valErr *model.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	err = svc.CreateProject(context.Background(), &model.Project{
		UserID: "user-1", Name: "Ghost area", AreaID: strPtr("ghost"),
	})
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError for unknown area, got %v", err)
	}
}

func TestCreateProjectDefaults(t *testing.T) {
	svc, projects, _, _ := projectFixture()

	project := &model.Project{UserID: "user-1", Name: "Marathon", AreaID: strPtr("area-1")}
	if err := svc.CreateProject(context.Background(), project); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	stored := projects.projects[project.ProjectID]
	if stored.Status != model.ProjectNotStarted {
		t.Errorf("status = %s, want not_started", stored.Status)
	}
	if stored.Priority != model.PriorityMedium {
		t.Errorf("priority = %s, want medium", stored.Priority)
	}
	if stored.Importance != 3 {
		t.Errorf("importance = %d, want default 3", stored.Importance)
	}
}

func TestCreateProjectImportanceBounds(t *testing.T) {
	svc, _, _, _ := projectFixture()

	err := svc.CreateProject(context.Background(), &model.Project{
		UserID: "user-1", Name: "Too important", AreaID: strPtr("area-1"), Importance: 9,
	})
	var valErr *model.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDeleteProjectCascadesToTasks(t *testing.T) {
	svc, projects, _, tasks := projectFixture()

	projects.projects["proj-1"] = &model.Project{ProjectID: "proj-1", UserID: "user-1", Name: "Doomed"}
	projects.projects["proj-2"] = &model.Project{ProjectID: "proj-2", UserID: "user-1", Name: "Survivor"}
	for _, id := range []string{"t1", "t2", "t3"} {
		tasks.tasks[id] = &model.Task{TaskID: id, UserID: "user-1", ProjectID: "proj-1", Name: id}
	}
	tasks.tasks["other"] = &model.Task{
		TaskID: "other", UserID: "user-1", ProjectID: "proj-2",
		Name: "Other", DependencyTaskIDs: []string{"t2"},
	}

	if err := svc.DeleteProject(context.Background(), "proj-1", "user-1"); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}

	for _, id := range []string{"t1", "t2", "t3"} {
		if tasks.tasks[id] != nil {
			t.Errorf("task %s must be deleted with its project", id)
		}
	}
	if tasks.tasks["other"] == nil {
		t.Fatal("task in another project must survive")
	}
	if len(tasks.tasks["other"].DependencyTaskIDs) != 0 {
		t.Errorf("references to cascaded tasks must be pulled, got %v", tasks.tasks["other"].DependencyTaskIDs)
	}
}

func TestDeleteAreaUnlinksProjects(t *testing.T) {
	areas := newFakeAreaStore()
	pillars := newFakePillarStore()
	projects := newFakeProjectStore()
	svc := &AreaService{Areas: areas, Pillars: pillars, Projects: projects}

	areas.areas["area-1"] = &model.Area{AreaID: "area-1", UserID: "user-1", Name: "Doomed"}
	projects.projects["proj-1"] = &model.Project{
		ProjectID: "proj-1", UserID: "user-1", AreaID: strPtr("area-1"), Name: "Orphan-to-be",
	}

	if err := svc.DeleteArea(context.Background(), "area-1", "user-1"); err != nil {
		t.Fatalf("DeleteArea failed: %v", err)
	}
	if areas.areas["area-1"] != nil {
		t.Error("area must be deleted")
	}
	survivor := projects.projects["proj-1"]
	if survivor == nil {
		t.Fatal("project must survive its area")
	}
	if survivor.AreaID != nil {
		t.Errorf("project area_id must be nulled, got %v", *survivor.AreaID)
	}
}

func TestDeletePillarUnlinksAreas(t *testing.T) {
	pillars := newFakePillarStore()
	areas := newFakeAreaStore()
	svc := &PillarService{Pillars: pillars, Areas: areas}

	pillars.pillars["pil-1"] = &model.Pillar{PillarID: "pil-1", UserID: "user-1", Name: "Doomed"}
	areas.areas["area-1"] = &model.Area{
		AreaID: "area-1", UserID: "user-1", PillarID: strPtr("pil-1"), Name: "Orphan-to-be",
	}

	if err := svc.DeletePillar(context.Background(), "pil-1", "user-1"); err != nil {
		t.Fatalf("DeletePillar failed: %v", err)
	}
	survivor := areas.areas["area-1"]
	if survivor == nil {
		t.Fatal("area must survive its pillar")
	}
	if survivor.PillarID != nil {
		t.Errorf("area pillar_id must be nulled, got %v", *survivor.PillarID)
	}
}
