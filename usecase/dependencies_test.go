package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"main/model"
)

func resolverFixture() (*DependencyResolver, *fakeTaskStore, *fakePreferencesStore, *fakePublisher) {
	tasks := newFakeTaskStore()
	projects := newFakeProjectStore()
	prefs := newFakePreferencesStore()
	publisher := &fakePublisher{}

	projects.projects["proj-1"] = &model.Project{ProjectID: "proj-1", UserID: "user-1", Name: "Launch"}

	resolver := &DependencyResolver{
		Tasks:       tasks,
		Projects:    projects,
		Preferences: prefs,
		Publisher:   publisher,
	}
	return resolver, tasks, prefs, publisher
}

func TestValidateTransitionBlockedByIncompleteDependency(t *testing.T) {
	resolver, tasks, _, _ := resolverFixture()

	tasks.tasks["dep-1"] = &model.Task{TaskID: "dep-1", UserID: "user-1", ProjectID: "proj-1", Name: "Write draft"}
	blocked := &model.Task{
		TaskID: "blocked", UserID: "user-1", ProjectID: "proj-1",
		Name: "Publish", DependencyTaskIDs: []string{"dep-1"},
	}

	err := resolver.ValidateTransition(context.Background(), blocked, model.TaskStatusInProgress, false)
	var depErr *model.DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected DependencyError, got %v", err)
	}
	if len(depErr.Blocking) != 1 || depErr.Blocking[0] != "Write draft" {
		t.Errorf("Blocking = %v, want the dependency's name", depErr.Blocking)
	}
}

func TestValidateTransitionAllowsUngatedStatus(t *testing.T) {
	resolver, tasks, _, _ := resolverFixture()

	tasks.tasks["dep-1"] = &model.Task{TaskID: "dep-1", UserID: "user-1", ProjectID: "proj-1", Name: "Write draft"}
	blocked := &model.Task{
		TaskID: "blocked", UserID: "user-1", ProjectID: "proj-1",
		Name: "Publish", DependencyTaskIDs: []string{"dep-1"},
	}

	// Moving back to todo is never gated, even with open dependencies.
	if err := resolver.ValidateTransition(context.Background(), blocked, model.TaskStatusTodo, false); err != nil {
		t.Errorf("ungated transition rejected: %v", err)
	}
}

func TestValidateTransitionSucceedsAfterDependencyCompletes(t *testing.T) {
	resolver, tasks, _, _ := resolverFixture()

	tasks.tasks["dep-1"] = &model.Task{
		TaskID: "dep-1", UserID: "user-1", ProjectID: "proj-1",
		Name: "Write draft", Completed: true, Status: model.TaskStatusCompleted,
	}
	task := &model.Task{
		TaskID: "t1", UserID: "user-1", ProjectID: "proj-1",
		Name: "Publish", DependencyTaskIDs: []string{"dep-1"},
	}

	if err := resolver.ValidateTransition(context.Background(), task, model.TaskStatusCompleted, true); err != nil {
		t.Errorf("transition with met dependencies rejected: %v", err)
	}
}

func TestValidateTransitionDanglingDependencyBlocks(t *testing.T) {
	resolver, _, _, _ := resolverFixture()

	task := &model.Task{
		TaskID: "t1", UserID: "user-1", ProjectID: "proj-1",
		Name: "Publish", DependencyTaskIDs: []string{"ghost"},
	}

	err := resolver.ValidateTransition(context.Background(), task, model.TaskStatusInProgress, false)
	var depErr *model.DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected DependencyError for dangling reference, got %v", err)
	}
	if !strings.Contains(depErr.Blocking[0], "ghost") {
		t.Errorf("Blocking = %v, want the unknown id surfaced", depErr.Blocking)
	}
}

func TestValidateDependencyList(t *testing.T) {
	resolver, tasks, _, _ := resolverFixture()
	tasks.tasks["dep-1"] = &model.Task{TaskID: "dep-1", UserID: "user-1", ProjectID: "proj-1", Name: "Exists"}

	tests := []struct {
		name    string
		depIDs  []string
		wantErr bool
	}{
		{"empty list", nil, false},
		{"valid reference", []string{"dep-1"}, false},
		{"self dependency", []string{"t1"}, true},
		{"duplicate", []string{"dep-1", "dep-1"}, true},
		{"nonexistent", []string{"nope"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := resolver.ValidateDependencyList(context.Background(), "user-1", "t1", tt.depIDs)
			if tt.wantErr {
				var valErr *model.ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNotifyUnblockedPublishesEvent(t *testing.T) {
	resolver, tasks, _, publisher := resolverFixture()

	completed := &model.Task{
		TaskID: "dep-1", UserID: "user-1", ProjectID: "proj-1",
		Name: "Write draft", Completed: true, Status: model.TaskStatusCompleted,
	}
	tasks.tasks["dep-1"] = completed
	tasks.tasks["waiting"] = &model.Task{
		TaskID: "waiting", UserID: "user-1", ProjectID: "proj-1",
		Name: "Publish", DependencyTaskIDs: []string{"dep-1"},
	}
	// Still blocked by a second open dependency: must not be notified.
	tasks.tasks["other-dep"] = &model.Task{TaskID: "other-dep", UserID: "user-1", ProjectID: "proj-1", Name: "Review"}
	tasks.tasks["still-blocked"] = &model.Task{
		TaskID: "still-blocked", UserID: "user-1", ProjectID: "proj-1",
		Name: "Ship", DependencyTaskIDs: []string{"dep-1", "other-dep"},
	}

	resolver.NotifyUnblocked(context.Background(), completed)

	if len(publisher.events) != 1 {
		t.Fatalf("published %d events, want 1", len(publisher.events))
	}
	event := publisher.events[0]
	if event.Type != model.NotificationTaskUnblocked {
		t.Errorf("event type = %s, want %s", event.Type, model.NotificationTaskUnblocked)
	}
	if event.TaskID != "waiting" {
		t.Errorf("event task = %s, want waiting", event.TaskID)
	}
	if !strings.Contains(event.Message, "Publish") {
		t.Errorf("message %q must name the unblocked task", event.Message)
	}
}

func TestNotifyUnblockedRespectsPreference(t *testing.T) {
	resolver, tasks, prefs, publisher := resolverFixture()
	prefs.prefs["user-1"] = &model.Preferences{UserID: "user-1", NotifyOnUnblocked: false}

	completed := &model.Task{
		TaskID: "dep-1", UserID: "user-1", ProjectID: "proj-1",
		Name: "Write draft", Completed: true, Status: model.TaskStatusCompleted,
	}
	tasks.tasks["dep-1"] = completed
	tasks.tasks["waiting"] = &model.Task{
		TaskID: "waiting", UserID: "user-1", ProjectID: "proj-1",
		Name: "Publish", DependencyTaskIDs: []string{"dep-1"},
	}

	resolver.NotifyUnblocked(context.Background(), completed)
	if len(publisher.events) != 0 {
		t.Errorf("published %d events, want 0 when the preference is off", len(publisher.events))
	}
}

func TestNotifyUnblockedSwallowsPublishFailure(t *testing.T) {
	resolver, tasks, _, publisher := resolverFixture()
	publisher.err = errors.New("queue down")

	completed := &model.Task{
		TaskID: "dep-1", UserID: "user-1", ProjectID: "proj-1",
		Name: "Write draft", Completed: true, Status: model.TaskStatusCompleted,
	}
	tasks.tasks["dep-1"] = completed
	tasks.tasks["waiting"] = &model.Task{
		TaskID: "waiting", UserID: "user-1", ProjectID: "proj-1",
		Name: "Publish", DependencyTaskIDs: []string{"dep-1"},
	}

	// Must not panic and must not surface the failure.
	resolver.NotifyUnblocked(context.Background(), completed)
}

func TestNotifyUnblockedNilPublisher(t *testing.T) {
	resolver, _, _, _ := resolverFixture()
	resolver.Publisher = nil

	completed := &model.Task{
		TaskID: "dep-1", UserID: "user-1", ProjectID: "proj-1",
		Name: "Write draft", Completed: true,
	}
	resolver.NotifyUnblocked(context.Background(), completed)
}
