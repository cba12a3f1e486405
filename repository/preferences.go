package repository

import (
	"context"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PreferencesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for user preferences
func GetPreferencesRepo(client *mongo.Client) *PreferencesRepo {
	dbName := os.Getenv("MONGO_DB")
	return &PreferencesRepo{
		MongoCollection: client.Database(dbName).Collection("preferences"),
	}
}

// GetPreferences returns the stored record or defaults when none exists.
func (r *PreferencesRepo) GetPreferences(ctx context.Context, userID string) (*model.Preferences, error) {
	timer := utils.TrackDBOperation("find_one", "preferences")
	defer timer.ObserveDuration()

	var prefs model.Preferences
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&prefs)
	if err == mongo.ErrNoDocuments {
		return model.DefaultPreferences(userID), nil
	}
	if err != nil {
		utils.TrackError("database", "preferences_fetch_failed")
		return nil, err
	}
	if prefs.CoachingTopN <= 0 {
		prefs.CoachingTopN = 3
	}
	return &prefs, nil
}

func (r *PreferencesRepo) UpsertPreferences(ctx context.Context, prefs *model.Preferences) error {
	timer := utils.TrackDBOperation("upsert", "preferences")
	defer timer.ObserveDuration()

	prefs.UpdatedAt = time.Now()
	_, err := r.MongoCollection.ReplaceOne(ctx,
		bson.M{"_id": prefs.UserID},
		prefs,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		utils.TrackError("database", "preferences_upsert_failed")
	}
	return err
}
