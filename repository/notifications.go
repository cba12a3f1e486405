package repository

import (
	"context"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for notifications
func GetNotificationRepo(client *mongo.Client) *NotificationRepo {
	dbName := os.Getenv("MONGO_DB")
	return &NotificationRepo{
		MongoCollection: client.Database(dbName).Collection("notifications"),
	}
}

func (r *NotificationRepo) CreateNotification(ctx context.Context, n *model.Notification) error {
	timer := utils.TrackDBOperation("insert", "notifications")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, n)
	if err != nil {
		utils.TrackError("database", "notification_creation_failed")
		return err
	}
	return nil
}

func (r *NotificationRepo) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*model.Notification, error) {
	timer := utils.TrackDBOperation("find", "notifications")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if unreadOnly {
		filter["read"] = false
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(100)

	var notifications []*model.Notification
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "notification_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &notifications); err != nil {
		utils.TrackError("database", "notification_decode_failed")
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "notifications")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID, "read": false})
	if err != nil {
		utils.TrackError("database", "notification_count_failed")
		return 0, err
	}
	return int(count), nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID, userID string) error {
	timer := utils.TrackDBOperation("update", "notifications")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": notificationID, "user_id": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		utils.TrackError("database", "notification_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.NewNotFoundError("notification", notificationID)
	}
	return nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update_many", "notifications")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		utils.TrackError("database", "notification_update_failed")
	}
	return err
}
