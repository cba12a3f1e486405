package repository

import (
	"context"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AttachmentRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for attachment metadata
func GetAttachmentRepo(client *mongo.Client) *AttachmentRepo {
	dbName := os.Getenv("MONGO_DB")
	return &AttachmentRepo{
		MongoCollection: client.Database(dbName).Collection("attachments"),
	}
}

func (r *AttachmentRepo) CreateAttachment(ctx context.Context, a *model.Attachment) error {
	timer := utils.TrackDBOperation("insert", "attachments")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, a)
	if err != nil {
		utils.TrackError("database", "attachment_creation_failed")
		return err
	}
	return nil
}

// GetUserAttachments lists attachment metadata, optionally filtered to one
// parent entity.
func (r *AttachmentRepo) GetUserAttachments(ctx context.Context, userID, parentType, parentID string) ([]*model.Attachment, error) {
	timer := utils.TrackDBOperation("find", "attachments")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if parentType != "" {
		filter["parent_type"] = parentType
	}
	if parentID != "" {
		filter["parent_id"] = parentID
	}

	var attachments []*model.Attachment
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "attachment_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &attachments); err != nil {
		utils.TrackError("database", "attachment_decode_failed")
		return nil, err
	}
	return attachments, nil
}

func (r *AttachmentRepo) DeleteAttachment(ctx context.Context, attachmentID, userID string) error {
	timer := utils.TrackDBOperation("delete", "attachments")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": attachmentID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "attachment_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return model.NewNotFoundError("attachment", attachmentID)
	}
	return nil
}
