package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service *usecase.NotificationService
}

func NewNotificationHandler(service *usecase.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "true"
	notifications, err := h.service.GetUserNotifications(c.Request.Context(), uid, unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	unread, err := h.service.CountUnread(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"notifications": dto.ToNotificationResponses(notifications),
		"unread_count":  unread,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), c.Param("id"), uid); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Notification marked read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.MarkAllRead(c.Request.Context(), uid); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "All notifications marked read"})
}
