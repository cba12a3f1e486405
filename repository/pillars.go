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

type PillarRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for pillars
func GetPillarRepo(client *mongo.Client) *PillarRepo {
	dbName := os.Getenv("MONGO_DB")
	return &PillarRepo{
		MongoCollection: client.Database(dbName).Collection("pillars"),
	}
}

func (r *PillarRepo) CreatePillar(ctx context.Context, pillar *model.Pillar) error {
	timer := utils.TrackDBOperation("insert", "pillars")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, pillar)
	if err != nil {
		utils.TrackError("database", "pillar_creation_failed")
		return err
	}
	return nil
}

// Retrieves all pillars for a user. Archived pillars are filtered here so the
// aggregation layer never sees them unless asked.
func (r *PillarRepo) GetUserPillars(ctx context.Context, userID string, includeArchived bool) ([]*model.Pillar, error) {
	timer := utils.TrackDBOperation("find", "pillars")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if !includeArchived {
		filter["archived"] = bson.M{"$ne": true}
	}

	var pillars []*model.Pillar
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "pillar_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &pillars); err != nil {
		utils.TrackError("database", "pillar_decode_failed")
		return nil, err
	}
	return pillars, nil
}

func (r *PillarRepo) GetPillarByID(ctx context.Context, userID, pillarID string) (*model.Pillar, error) {
	timer := utils.TrackDBOperation("find_one", "pillars")
	defer timer.ObserveDuration()

	var pillar model.Pillar
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": pillarID, "user_id": userID}).Decode(&pillar)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "pillar_fetch_failed")
		return nil, err
	}
	return &pillar, nil
}

func (r *PillarRepo) UpdatePillar(ctx context.Context, pillarID, userID string, updates *model.Pillar) error {
	timer := utils.TrackDBOperation("update", "pillars")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": pillarID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"name":                       updates.Name,
		"description":                updates.Description,
		"icon":                       updates.Icon,
		"color":                      updates.Color,
		"sort_order":                 updates.SortOrder,
		"archived":                   updates.Archived,
		"time_allocation_percentage": updates.TimeAllocationPercentage,
		"updated_at":                 time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "pillar_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.NewNotFoundError("pillar", pillarID)
	}
	return nil
}

func (r *PillarRepo) DeletePillar(ctx context.Context, pillarID, userID string) error {
	timer := utils.TrackDBOperation("delete", "pillars")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": pillarID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "pillar_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return model.NewNotFoundError("pillar", pillarID)
	}
	return nil
}
