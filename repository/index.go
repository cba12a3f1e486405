package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetName("user_id_index"),
	}

	// Every entity collection is scoped by user_id.
	for _, name := range []string{"pillars", "areas", "projects", "journal_entries", "attachments"} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, userIndex); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	areaIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "pillar_id", Value: 1},
			},
			Options: options.Index().SetName("user_area_pillar"),
		},
	}
	if _, err := db.Collection("areas").Indexes().CreateMany(ctx, areaIndexes); err != nil {
		return fmt.Errorf("failed to create areas indexes: %w", err)
	}

	projectIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "area_id", Value: 1},
			},
			Options: options.Index().SetName("user_project_area"),
		},
	}
	if _, err := db.Collection("projects").Indexes().CreateMany(ctx, projectIndexes); err != nil {
		return fmt.Errorf("failed to create projects indexes: %w", err)
	}

	taskIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "project_id", Value: 1},
			},
			Options: options.Index().SetName("user_task_project"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "completed", Value: 1},
				{Key: "due_date", Value: 1},
			},
			Options: options.Index().SetName("user_task_due"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "dependency_task_ids", Value: 1},
			},
			Options: options.Index().SetName("user_task_dependencies"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "parent_task_id", Value: 1},
			},
			Options: options.Index().SetName("user_task_parent"),
		},
	}
	if _, err := db.Collection("tasks").Indexes().CreateMany(ctx, taskIndexes); err != nil {
		return fmt.Errorf("failed to create tasks indexes: %w", err)
	}

	notificationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "read", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("user_notifications_unread"),
		},
	}
	if _, err := db.Collection("notifications").Indexes().CreateMany(ctx, notificationIndexes); err != nil {
		return fmt.Errorf("failed to create notifications indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
