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

type JournalRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for journal entries
func GetJournalRepo(client *mongo.Client) *JournalRepo {
	dbName := os.Getenv("MONGO_DB")
	return &JournalRepo{
		MongoCollection: client.Database(dbName).Collection("journal_entries"),
	}
}

func (r *JournalRepo) CreateEntry(ctx context.Context, entry *model.JournalEntry) error {
	timer := utils.TrackDBOperation("insert", "journal_entries")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, entry)
	if err != nil {
		utils.TrackError("database", "journal_creation_failed")
		return err
	}
	return nil
}

func (r *JournalRepo) GetUserEntries(ctx context.Context, userID string, limit int64) ([]*model.JournalEntry, error) {
	timer := utils.TrackDBOperation("find", "journal_entries")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	var entries []*model.JournalEntry
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "journal_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "journal_decode_failed")
		return nil, err
	}
	return entries, nil
}

func (r *JournalRepo) UpdateEntry(ctx context.Context, entryID, userID string, updates *model.JournalEntry) error {
	timer := utils.TrackDBOperation("update", "journal_entries")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": entryID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"title":      updates.Title,
		"content":    updates.Content,
		"mood":       updates.Mood,
		"tags":       updates.Tags,
		"updated_at": time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "journal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.NewNotFoundError("journal entry", entryID)
	}
	return nil
}

func (r *JournalRepo) DeleteEntry(ctx context.Context, entryID, userID string) error {
	timer := utils.TrackDBOperation("delete", "journal_entries")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": entryID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "journal_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return model.NewNotFoundError("journal entry", entryID)
	}
	return nil
}
