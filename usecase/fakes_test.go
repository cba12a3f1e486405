package usecase

import (
	"context"
	"sort"

	"main/model"
)

// In-memory store fakes. Each fake clones on read and write so tests observe
// database-like value semantics, and each carries an injectable err that every
// method returns when set.

type fakePillarStore struct {
	pillars map[string]*model.Pillar
	err     error
}

func newFakePillarStore() *fakePillarStore {
	return &fakePillarStore{pillars: make(map[string]*model.Pillar)}
}

func (s *fakePillarStore) CreatePillar(ctx context.Context, pillar *model.Pillar) error {
	if s.err != nil {
		return s.err
	}
	clone := *pillar
	s.pillars[pillar.PillarID] = &clone
	return nil
}

func (s *fakePillarStore) GetUserPillars(ctx context.Context, userID string, includeArchived bool) ([]*model.Pillar, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*model.Pillar
	for _, p := range s.pillars {
		if p.UserID != userID || (p.Archived && !includeArchived) {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PillarID < out[j].PillarID })
	return out, nil
}

func (s *fakePillarStore) GetPillarByID(ctx context.Context, userID, pillarID string) (*model.Pillar, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := s.pillars[pillarID]
	if p == nil || p.UserID != userID {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (s *fakePillarStore) UpdatePillar(ctx context.Context, pillarID, userID string, updates *model.Pillar) error {
	if s.err != nil {
		return s.err
	}
	clone := *updates
	s.pillars[pillarID] = &clone
	return nil
}

func (s *fakePillarStore) DeletePillar(ctx context.Context, pillarID, userID string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.pillars, pillarID)
	return nil
}

type fakeAreaStore struct {
	areas map[string]*model.Area
	err   error
}

func newFakeAreaStore() *fakeAreaStore {
	return &fakeAreaStore{areas: make(map[string]*model.Area)}
}

func (s *fakeAreaStore) CreateArea(ctx context.Context, area *model.Area) error {
	if s.err != nil {
		return s.err
	}
	clone := *area
	s.areas[area.AreaID] = &clone
	return nil
}

func (s *fakeAreaStore) list(match func(*model.Area) bool) []*model.Area {
	var out []*model.Area
	for _, a := range s.areas {
		if match(a) {
			clone := *a
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AreaID < out[j].AreaID })
	return out
}

func (s *fakeAreaStore) GetUserAreas(ctx context.Context, userID string, includeArchived bool) ([]*model.Area, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list(func(a *model.Area) bool {
		return a.UserID == userID && (includeArchived || !a.Archived)
	}), nil
}

func (s *fakeAreaStore) GetAreasByPillarIDs(ctx context.Context, userID string, pillarIDs []string) ([]*model.Area, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := make(map[string]bool, len(pillarIDs))
	for _, id := range pillarIDs {
		ids[id] = true
	}
	return s.list(func(a *model.Area) bool {
		return a.UserID == userID && a.PillarID != nil && ids[*a.PillarID]
	}), nil
}

func (s *fakeAreaStore) GetAreaByID(ctx context.Context, userID, areaID string) (*model.Area, error) {
	if s.err != nil {
		return nil, s.err
	}
	a := s.areas[areaID]
	if a == nil || a.UserID != userID {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (s *fakeAreaStore) UpdateArea(ctx context.Context, areaID, userID string, updates *model.Area) error {
	if s.err != nil {
		return s.err
	}
	clone := *updates
	s.areas[areaID] = &clone
	return nil
}

func (s *fakeAreaStore) DeleteArea(ctx context.Context, areaID, userID string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.areas, areaID)
	return nil
}

func (s *fakeAreaStore) UnlinkPillar(ctx context.Context, userID, pillarID string) error {
	if s.err != nil {
		return s.err
	}
	for _, a := range s.areas {
		if a.UserID == userID && a.PillarID != nil && *a.PillarID == pillarID {
			a.PillarID = nil
		}
	}
	return nil
}

type fakeProjectStore struct {
	projects map[string]*model.Project
	err      error
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[string]*model.Project)}
}

func (s *fakeProjectStore) CreateProject(ctx context.Context, project *model.Project) error {
	if s.err != nil {
		return s.err
	}
	clone := *project
	s.projects[project.ProjectID] = &clone
	return nil
}

func (s *fakeProjectStore) list(match func(*model.Project) bool) []*model.Project {
	var out []*model.Project
	for _, p := range s.projects {
		if match(p) {
			clone := *p
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProjectID < out[j].ProjectID })
	return out
}

func (s *fakeProjectStore) GetUserProjects(ctx context.Context, userID string, includeArchived bool) ([]*model.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list(func(p *model.Project) bool {
		return p.UserID == userID && (includeArchived || !p.Archived)
	}), nil
}

func (s *fakeProjectStore) GetProjectsByAreaIDs(ctx context.Context, userID string, areaIDs []string) ([]*model.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := make(map[string]bool, len(areaIDs))
	for _, id := range areaIDs {
		ids[id] = true
	}
	return s.list(func(p *model.Project) bool {
		return p.UserID == userID && p.AreaID != nil && ids[*p.AreaID]
	}), nil
}

func (s *fakeProjectStore) GetProjectByID(ctx context.Context, userID, projectID string) (*model.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := s.projects[projectID]
	if p == nil || p.UserID != userID {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (s *fakeProjectStore) UpdateProject(ctx context.Context, projectID, userID string, updates *model.Project) error {
	if s.err != nil {
		return s.err
	}
	clone := *updates
	s.projects[projectID] = &clone
	return nil
}

func (s *fakeProjectStore) DeleteProject(ctx context.Context, projectID, userID string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.projects, projectID)
	return nil
}

func (s *fakeProjectStore) UnlinkArea(ctx context.Context, userID, areaID string) error {
	if s.err != nil {
		return s.err
	}
	for _, p := range s.projects {
		if p.UserID == userID && p.AreaID != nil && *p.AreaID == areaID {
			p.AreaID = nil
		}
	}
	return nil
}

type fakeTaskStore struct {
	tasks map[string]*model.Task
	err   error
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]*model.Task)}
}

func (s *fakeTaskStore) list(match func(*model.Task) bool) []*model.Task {
	var out []*model.Task
	for _, t := range s.tasks {
		if match(t) {
			clone := *t
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskID < out[j].TaskID })
	return out
}

func (s *fakeTaskStore) CreateTask(ctx context.Context, task *model.Task) error {
	if s.err != nil {
		return s.err
	}
	clone := *task
	s.tasks[task.TaskID] = &clone
	return nil
}

func (s *fakeTaskStore) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list(func(t *model.Task) bool { return t.UserID == userID }), nil
}

func (s *fakeTaskStore) GetActiveTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list(func(t *model.Task) bool { return t.UserID == userID && t.Active() }), nil
}

func (s *fakeTaskStore) GetTasksByProjectIDs(ctx context.Context, userID string, projectIDs []string) ([]*model.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := make(map[string]bool, len(projectIDs))
	for _, id := range projectIDs {
		ids[id] = true
	}
	return s.list(func(t *model.Task) bool { return t.UserID == userID && ids[t.ProjectID] }), nil
}

func (s *fakeTaskStore) GetTasksByIDs(ctx context.Context, userID string, taskIDs []string) ([]*model.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := make(map[string]bool, len(taskIDs))
	for _, id := range taskIDs {
		ids[id] = true
	}
	return s.list(func(t *model.Task) bool { return t.UserID == userID && ids[t.TaskID] }), nil
}

func (s *fakeTaskStore) GetSubTasks(ctx context.Context, userID, parentTaskID string) ([]*model.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list(func(t *model.Task) bool {
		return t.UserID == userID && t.ParentTaskID != nil && *t.ParentTaskID == parentTaskID
	}), nil
}

func (s *fakeTaskStore) GetDependents(ctx context.Context, userID, taskID string) ([]*model.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list(func(t *model.Task) bool {
		if t.UserID != userID || t.Completed {
			return false
		}
		for _, depID := range t.DependencyTaskIDs {
			if depID == taskID {
				return true
			}
		}
		return false
	}), nil
}

func (s *fakeTaskStore) GetTaskByID(ctx context.Context, userID, taskID string) (*model.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	t := s.tasks[taskID]
	if t == nil || t.UserID != userID {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (s *fakeTaskStore) UpdateTask(ctx context.Context, taskID, userID string, updates *model.Task) error {
	if s.err != nil {
		return s.err
	}
	clone := *updates
	s.tasks[taskID] = &clone
	return nil
}

func (s *fakeTaskStore) DeleteTask(ctx context.Context, taskID, userID string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.tasks, taskID)
	return nil
}

func (s *fakeTaskStore) DeleteTasksByProjectID(ctx context.Context, userID, projectID string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	var removed []string
	for id, t := range s.tasks {
		if t.UserID == userID && t.ProjectID == projectID {
			removed = append(removed, id)
			delete(s.tasks, id)
		}
	}
	sort.Strings(removed)
	return removed, nil
}

func (s *fakeTaskStore) DeleteTasksByIDs(ctx context.Context, userID string, taskIDs []string) error {
	if s.err != nil {
		return s.err
	}
	for _, id := range taskIDs {
		delete(s.tasks, id)
	}
	return nil
}

func (s *fakeTaskStore) PullDependencyRefs(ctx context.Context, userID string, removedIDs []string) error {
	if s.err != nil {
		return s.err
	}
	removed := make(map[string]bool, len(removedIDs))
	for _, id := range removedIDs {
		removed[id] = true
	}
	for _, t := range s.tasks {
		if t.UserID != userID || len(t.DependencyTaskIDs) == 0 {
			continue
		}
		var kept []string
		for _, depID := range t.DependencyTaskIDs {
			if !removed[depID] {
				kept = append(kept, depID)
			}
		}
		t.DependencyTaskIDs = kept
	}
	return nil
}

type fakePreferencesStore struct {
	prefs map[string]*model.Preferences
	err   error
}

func newFakePreferencesStore() *fakePreferencesStore {
	return &fakePreferencesStore{prefs: make(map[string]*model.Preferences)}
}

func (s *fakePreferencesStore) GetPreferences(ctx context.Context, userID string) (*model.Preferences, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.prefs[userID]; ok {
		clone := *p
		return &clone, nil
	}
	return model.DefaultPreferences(userID), nil
}

func (s *fakePreferencesStore) UpsertPreferences(ctx context.Context, prefs *model.Preferences) error {
	if s.err != nil {
		return s.err
	}
	clone := *prefs
	s.prefs[prefs.UserID] = &clone
	return nil
}

type fakeJournalStore struct {
	entries map[string]*model.JournalEntry
	err     error
}

func newFakeJournalStore() *fakeJournalStore {
	return &fakeJournalStore{entries: make(map[string]*model.JournalEntry)}
}

func (s *fakeJournalStore) CreateEntry(ctx context.Context, entry *model.JournalEntry) error {
	if s.err != nil {
		return s.err
	}
	clone := *entry
	s.entries[entry.EntryID] = &clone
	return nil
}

func (s *fakeJournalStore) GetUserEntries(ctx context.Context, userID string, limit int64) ([]*model.JournalEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*model.JournalEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			clone := *e
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeJournalStore) UpdateEntry(ctx context.Context, entryID, userID string, updates *model.JournalEntry) error {
	if s.err != nil {
		return s.err
	}
	clone := *updates
	s.entries[entryID] = &clone
	return nil
}

func (s *fakeJournalStore) DeleteEntry(ctx context.Context, entryID, userID string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.entries, entryID)
	return nil
}

type fakePublisher struct {
	events []*model.Event
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, event *model.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type fakeCoach struct {
	message string
	err     error
	calls   int
}

func (c *fakeCoach) CoachingMessage(ctx context.Context, taskName, projectName string, reasons []string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.message, nil
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
