package repository

import (
	"context"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TaskRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for tasks
func GetTaskRepo(client *mongo.Client) *TaskRepo {
	dbName := os.Getenv("MONGO_DB")
	return &TaskRepo{
		MongoCollection: client.Database(dbName).Collection("tasks"),
	}
}

func (r *TaskRepo) CreateTask(ctx context.Context, task *model.Task) error {
	timer := utils.TrackDBOperation("insert", "tasks")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, task)
	if err != nil {
		utils.TrackError("database", "task_creation_failed")
		return err
	}
	return nil
}

func (r *TaskRepo) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	return r.findTasks(ctx, bson.M{"user_id": userID})
}

// GetActiveTasks returns the user's incomplete tasks in an active status.
// A missing status field counts as todo.
func (r *TaskRepo) GetActiveTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":   userID,
		"completed": bson.M{"$ne": true},
		"$or": []bson.M{
			{"status": bson.M{"$in": model.ActiveTaskStatuses}},
			{"status": bson.M{"$exists": false}},
			{"status": ""},
		},
	}
	return r.findTasks(ctx, filter)
}

// Batched lookup for the aggregation layer: one query for all tasks whose
// project_id is in the given set.
func (r *TaskRepo) GetTasksByProjectIDs(ctx context.Context, userID string, projectIDs []string) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	if len(projectIDs) == 0 {
		return nil, nil
	}
	filter := bson.M{
		"user_id":    userID,
		"project_id": bson.M{"$in": projectIDs},
	}
	return r.findTasks(ctx, filter)
}

// Batched lookup by id, used by the dependency resolver.
func (r *TaskRepo) GetTasksByIDs(ctx context.Context, userID string, taskIDs []string) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	if len(taskIDs) == 0 {
		return nil, nil
	}
	filter := bson.M{
		"user_id": userID,
		"_id":     bson.M{"$in": taskIDs},
	}
	return r.findTasks(ctx, filter)
}

// GetSubTasks returns direct children of the given parent task.
func (r *TaskRepo) GetSubTasks(ctx context.Context, userID, parentTaskID string) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	return r.findTasks(ctx, bson.M{"user_id": userID, "parent_task_id": parentTaskID})
}

// GetDependents returns incomplete tasks whose dependency list contains the
// given task id, used for the unblocked scan after a completion.
func (r *TaskRepo) GetDependents(ctx context.Context, userID, taskID string) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":             userID,
		"completed":           bson.M{"$ne": true},
		"dependency_task_ids": taskID,
	}
	return r.findTasks(ctx, filter)
}

func (r *TaskRepo) findTasks(ctx context.Context, filter bson.M) ([]*model.Task, error) {
	var tasks []*model.Task
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &tasks); err != nil {
		utils.TrackError("database", "task_decode_failed")
		return nil, err
	}
	for _, t := range tasks {
		normalizeTask(t)
	}
	return tasks, nil
}

func (r *TaskRepo) GetTaskByID(ctx context.Context, userID, taskID string) (*model.Task, error) {
	timer := utils.TrackDBOperation("find_one", "tasks")
	defer timer.ObserveDuration()

	var task model.Task
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": taskID, "user_id": userID}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	normalizeTask(&task)
	return &task, nil
}

func (r *TaskRepo) UpdateTask(ctx context.Context, taskID, userID string, updates *model.Task) error {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": taskID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"project_id":                   updates.ProjectID,
		"parent_task_id":               updates.ParentTaskID,
		"name":                         updates.Name,
		"description":                  updates.Description,
		"status":                       updates.Status,
		"priority":                     updates.Priority,
		"due_date":                     updates.DueDate,
		"due_time":                     updates.DueTime,
		"completed":                    updates.Completed,
		"completed_at":                 updates.CompletedAt,
		"dependency_task_ids":          updates.DependencyTaskIDs,
		"kanban_column":                updates.KanbanColumn,
		"sort_order":                   updates.SortOrder,
		"estimated_duration":           updates.EstimatedDuration,
		"sub_task_completion_required": updates.RequiresSubTaskCompletion(),
		"updated_at":                   time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.NewNotFoundError("task", taskID)
	}

	if updates.Completed {
		utils.TrackTaskCompletion(userID)
	}
	return nil
}

func (r *TaskRepo) DeleteTask(ctx context.Context, taskID, userID string) error {
	timer := utils.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": taskID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "task_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return model.NewNotFoundError("task", taskID)
	}
	return nil
}

// DeleteTasksByProjectID removes every task under a project as part of the
// project delete cascade.
func (r *TaskRepo) DeleteTasksByProjectID(ctx context.Context, userID, projectID string) ([]string, error) {
	timer := utils.TrackDBOperation("delete_many", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID, "project_id": projectID}
	ids, err := r.collectIDs(ctx, filter)
	if err != nil {
		return nil, err
	}
	if _, err := r.MongoCollection.DeleteMany(ctx, filter); err != nil {
		utils.TrackError("database", "task_cascade_failed")
		return nil, err
	}
	return ids, nil
}

// DeleteTasksByIDs removes the given tasks, used by the sub-task cascade.
func (r *TaskRepo) DeleteTasksByIDs(ctx context.Context, userID string, taskIDs []string) error {
	timer := utils.TrackDBOperation("delete_many", "tasks")
	defer timer.ObserveDuration()

	if len(taskIDs) == 0 {
		return nil
	}
	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"user_id": userID,
		"_id":     bson.M{"$in": taskIDs},
	})
	if err != nil {
		utils.TrackError("database", "task_cascade_failed")
	}
	return err
}

// PullDependencyRefs removes deleted task ids from every other task's
// dependency list so they cannot linger as forever-unmet prerequisites.
func (r *TaskRepo) PullDependencyRefs(ctx context.Context, userID string, removedIDs []string) error {
	timer := utils.TrackDBOperation("update_many", "tasks")
	defer timer.ObserveDuration()

	if len(removedIDs) == 0 {
		return nil
	}
	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "dependency_task_ids": bson.M{"$in": removedIDs}},
		bson.M{"$pull": bson.M{"dependency_task_ids": bson.M{"$in": removedIDs}}},
	)
	if err != nil {
		utils.TrackError("database", "dependency_cleanup_failed")
	}
	return err
}

func (r *TaskRepo) collectIDs(ctx context.Context, filter bson.M) ([]string, error) {
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var row struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		ids = append(ids, row.ID)
	}
	return ids, cursor.Err()
}

func normalizeTask(t *model.Task) {
	t.Status = model.NormalizeTaskStatus(string(t.Status))
	t.Priority = model.NormalizePriority(string(t.Priority))
}
