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

type ProjectRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for projects
func GetProjectRepo(client *mongo.Client) *ProjectRepo {
	dbName := os.Getenv("MONGO_DB")
	return &ProjectRepo{
		MongoCollection: client.Database(dbName).Collection("projects"),
	}
}

func (r *ProjectRepo) CreateProject(ctx context.Context, project *model.Project) error {
	timer := utils.TrackDBOperation("insert", "projects")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, project)
	if err != nil {
		utils.TrackError("database", "project_creation_failed")
		return err
	}
	return nil
}

func (r *ProjectRepo) GetUserProjects(ctx context.Context, userID string, includeArchived bool) ([]*model.Project, error) {
	timer := utils.TrackDBOperation("find", "projects")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if !includeArchived {
		filter["archived"] = bson.M{"$ne": true}
	}
	return r.findProjects(ctx, filter)
}

// Batched lookup for the aggregation layer: one query for all projects whose
// area_id is in the given set.
func (r *ProjectRepo) GetProjectsByAreaIDs(ctx context.Context, userID string, areaIDs []string) ([]*model.Project, error) {
	timer := utils.TrackDBOperation("find", "projects")
	defer timer.ObserveDuration()

	if len(areaIDs) == 0 {
		return nil, nil
	}
	filter := bson.M{
		"user_id": userID,
		"area_id": bson.M{"$in": areaIDs},
	}
	return r.findProjects(ctx, filter)
}

func (r *ProjectRepo) findProjects(ctx context.Context, filter bson.M) ([]*model.Project, error) {
	var projects []*model.Project
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "project_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &projects); err != nil {
		utils.TrackError("database", "project_decode_failed")
		return nil, err
	}
	for _, p := range projects {
		normalizeProject(p)
	}
	return projects, nil
}

func (r *ProjectRepo) GetProjectByID(ctx context.Context, userID, projectID string) (*model.Project, error) {
	timer := utils.TrackDBOperation("find_one", "projects")
	defer timer.ObserveDuration()

	var project model.Project
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": projectID, "user_id": userID}).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "project_fetch_failed")
		return nil, err
	}
	normalizeProject(&project)
	return &project, nil
}

func (r *ProjectRepo) UpdateProject(ctx context.Context, projectID, userID string, updates *model.Project) error {
	timer := utils.TrackDBOperation("update", "projects")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": projectID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"area_id":     updates.AreaID,
		"name":        updates.Name,
		"description": updates.Description,
		"status":      updates.Status,
		"priority":    updates.Priority,
		"importance":  updates.Importance,
		"deadline":    updates.Deadline,
		"archived":    updates.Archived,
		"updated_at":  time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "project_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.NewNotFoundError("project", projectID)
	}
	return nil
}

func (r *ProjectRepo) DeleteProject(ctx context.Context, projectID, userID string) error {
	timer := utils.TrackDBOperation("delete", "projects")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": projectID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "project_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return model.NewNotFoundError("project", projectID)
	}
	return nil
}

// UnlinkArea nulls out area_id on every project that referenced the deleted
// area. Child projects survive area deletion.
func (r *ProjectRepo) UnlinkArea(ctx context.Context, userID, areaID string) error {
	timer := utils.TrackDBOperation("update_many", "projects")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "area_id": areaID},
		bson.M{"$unset": bson.M{"area_id": ""}, "$set": bson.M{"updated_at": time.Now()}},
	)
	if err != nil {
		utils.TrackError("database", "project_unlink_failed")
	}
	return err
}

// Older rows carry display-cased status strings ("Not Started"); one
// normalization applied at the read boundary, writes always store canonical.
func normalizeProject(p *model.Project) {
	p.Status = model.NormalizeProjectStatus(string(p.Status))
	p.Priority = model.NormalizePriority(string(p.Priority))
}
