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

type AreaRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for areas
func GetAreaRepo(client *mongo.Client) *AreaRepo {
	dbName := os.Getenv("MONGO_DB")
	return &AreaRepo{
		MongoCollection: client.Database(dbName).Collection("areas"),
	}
}

func (r *AreaRepo) CreateArea(ctx context.Context, area *model.Area) error {
	timer := utils.TrackDBOperation("insert", "areas")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, area)
	if err != nil {
		utils.TrackError("database", "area_creation_failed")
		return err
	}
	return nil
}

func (r *AreaRepo) GetUserAreas(ctx context.Context, userID string, includeArchived bool) ([]*model.Area, error) {
	timer := utils.TrackDBOperation("find", "areas")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if !includeArchived {
		filter["archived"] = bson.M{"$ne": true}
	}
	return r.findAreas(ctx, filter)
}

// Batched lookup for the aggregation layer: one query for all areas whose
// pillar_id is in the given set.
func (r *AreaRepo) GetAreasByPillarIDs(ctx context.Context, userID string, pillarIDs []string) ([]*model.Area, error) {
	timer := utils.TrackDBOperation("find", "areas")
	defer timer.ObserveDuration()

	if len(pillarIDs) == 0 {
		return nil, nil
	}
	filter := bson.M{
		"user_id":   userID,
		"pillar_id": bson.M{"$in": pillarIDs},
	}
	return r.findAreas(ctx, filter)
}

func (r *AreaRepo) findAreas(ctx context.Context, filter bson.M) ([]*model.Area, error) {
	var areas []*model.Area
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "area_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &areas); err != nil {
		utils.TrackError("database", "area_decode_failed")
		return nil, err
	}
	return areas, nil
}

func (r *AreaRepo) GetAreaByID(ctx context.Context, userID, areaID string) (*model.Area, error) {
	timer := utils.TrackDBOperation("find_one", "areas")
	defer timer.ObserveDuration()

	var area model.Area
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": areaID, "user_id": userID}).Decode(&area)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "area_fetch_failed")
		return nil, err
	}
	return &area, nil
}

func (r *AreaRepo) UpdateArea(ctx context.Context, areaID, userID string, updates *model.Area) error {
	timer := utils.TrackDBOperation("update", "areas")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": areaID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"pillar_id":   updates.PillarID,
		"name":        updates.Name,
		"description": updates.Description,
		"icon":        updates.Icon,
		"color":       updates.Color,
		"importance":  updates.Importance,
		"sort_order":  updates.SortOrder,
		"archived":    updates.Archived,
		"updated_at":  time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "area_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.NewNotFoundError("area", areaID)
	}
	return nil
}

func (r *AreaRepo) DeleteArea(ctx context.Context, areaID, userID string) error {
	timer := utils.TrackDBOperation("delete", "areas")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": areaID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "area_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return model.NewNotFoundError("area", areaID)
	}
	return nil
}

// UnlinkPillar nulls out pillar_id on every area that referenced the deleted
// pillar. Child areas survive pillar deletion.
func (r *AreaRepo) UnlinkPillar(ctx context.Context, userID, pillarID string) error {
	timer := utils.TrackDBOperation("update_many", "areas")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "pillar_id": pillarID},
		bson.M{"$unset": bson.M{"pillar_id": ""}, "$set": bson.M{"updated_at": time.Now()}},
	)
	if err != nil {
		utils.TrackError("database", "area_unlink_failed")
	}
	return err
}
