package usecase

import (
	"context"

	"main/model"
)

// Store interfaces are satisfied by the repository package. Services accept
// these rather than concrete repos so tests can run against in-memory fakes.

type PillarStore interface {
	CreatePillar(ctx context.Context, pillar *model.Pillar) error
	GetUserPillars(ctx context.Context, userID string, includeArchived bool) ([]*model.Pillar, error)
	GetPillarByID(ctx context.Context, userID, pillarID string) (*model.Pillar, error)
	UpdatePillar(ctx context.Context, pillarID, userID string, updates *model.Pillar) error
	DeletePillar(ctx context.Context, pillarID, userID string) error
}

type AreaStore interface {
	CreateArea(ctx context.Context, area *model.Area) error
	GetUserAreas(ctx context.Context, userID string, includeArchived bool) ([]*model.Area, error)
	GetAreasByPillarIDs(ctx context.Context, userID string, pillarIDs []string) ([]*model.Area, error)
	GetAreaByID(ctx context.Context, userID, areaID string) (*model.Area, error)
	UpdateArea(ctx context.Context, areaID, userID string, updates *model.Area) error
	DeleteArea(ctx context.Context, areaID, userID string) error
	UnlinkPillar(ctx context.Context, userID, pillarID string) error
}

type ProjectStore interface {
	CreateProject(ctx context.Context, project *model.Project) error
	GetUserProjects(ctx context.Context, userID string, includeArchived bool) ([]*model.Project, error)
	GetProjectsByAreaIDs(ctx context.Context, userID string, areaIDs []string) ([]*model.Project, error)
	GetProjectByID(ctx context.Context, userID, projectID string) (*model.Project, error)
	UpdateProject(ctx context.Context, projectID, userID string, updates *model.Project) error
	DeleteProject(ctx context.Context, projectID, userID string) error
	UnlinkArea(ctx context.Context, userID, areaID string) error
}

type TaskStore interface {
	CreateTask(ctx context.Context, task *model.Task) error
	GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error)
	GetActiveTasks(ctx context.Context, userID string) ([]*model.Task, error)
	GetTasksByProjectIDs(ctx context.Context, userID string, projectIDs []string) ([]*model.Task, error)
	GetTasksByIDs(ctx context.Context, userID string, taskIDs []string) ([]*model.Task, error)
	GetSubTasks(ctx context.Context, userID, parentTaskID string) ([]*model.Task, error)
	GetDependents(ctx context.Context, userID, taskID string) ([]*model.Task, error)
	GetTaskByID(ctx context.Context, userID, taskID string) (*model.Task, error)
	UpdateTask(ctx context.Context, taskID, userID string, updates *model.Task) error
	DeleteTask(ctx context.Context, taskID, userID string) error
	DeleteTasksByProjectID(ctx context.Context, userID, projectID string) ([]string, error)
	DeleteTasksByIDs(ctx context.Context, userID string, taskIDs []string) error
	PullDependencyRefs(ctx context.Context, userID string, removedIDs []string) error
}

type JournalStore interface {
	CreateEntry(ctx context.Context, entry *model.JournalEntry) error
	GetUserEntries(ctx context.Context, userID string, limit int64) ([]*model.JournalEntry, error)
	UpdateEntry(ctx context.Context, entryID, userID string, updates *model.JournalEntry) error
	DeleteEntry(ctx context.Context, entryID, userID string) error
}

type NotificationStore interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
	GetUserNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*model.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, notificationID, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type AttachmentStore interface {
	CreateAttachment(ctx context.Context, a *model.Attachment) error
	GetUserAttachments(ctx context.Context, userID, parentType, parentID string) ([]*model.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID, userID string) error
}

type PreferencesStore interface {
	GetPreferences(ctx context.Context, userID string) (*model.Preferences, error)
	UpsertPreferences(ctx context.Context, prefs *model.Preferences) error
}

// EventPublisher pushes best-effort side effects onto the outbox. Publish
// failures are logged by callers and never surfaced to API clients.
type EventPublisher interface {
	Publish(ctx context.Context, event *model.Event) error
}

// Coach generates an optional natural-language coaching message for a
// top-priority task. Implementations are best-effort.
type Coach interface {
	CoachingMessage(ctx context.Context, taskName, projectName string, reasons []string) (string, error)
}
