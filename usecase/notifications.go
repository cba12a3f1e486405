package usecase

import (
	"context"

	"main/model"
)

type NotificationService struct {
	Notifications NotificationStore
}

func (svc *NotificationService) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*model.Notification, error) {
	return svc.Notifications.GetUserNotifications(ctx, userID, unreadOnly)
}

func (svc *NotificationService) CountUnread(ctx context.Context, userID string) (int, error) {
	return svc.Notifications.CountUnread(ctx, userID)
}

func (svc *NotificationService) MarkRead(ctx context.Context, notificationID, userID string) error {
	return svc.Notifications.MarkRead(ctx, notificationID, userID)
}

func (svc *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return svc.Notifications.MarkAllRead(ctx, userID)
}
