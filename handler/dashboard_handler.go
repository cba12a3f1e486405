package handler

import (
	"log"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

const dashboardJournalLimit = 5

// DashboardHandler composes the single-call payload the frontend renders on
// load: full pillar hierarchy with aggregates, today's priorities, recent
// journal entries, and the unread notification count.
type DashboardHandler struct {
	hierarchy     *usecase.HierarchyService
	priorities    *usecase.PriorityService
	journal       *usecase.JournalService
	notifications *usecase.NotificationService
}

func NewDashboardHandler(
	hierarchy *usecase.HierarchyService,
	priorities *usecase.PriorityService,
	journal *usecase.JournalService,
	notifications *usecase.NotificationService,
) *DashboardHandler {
	return &DashboardHandler{
		hierarchy:     hierarchy,
		priorities:    priorities,
		journal:       journal,
		notifications: notifications,
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	pillars, err := h.hierarchy.ListPillars(ctx, uid, usecase.FetchOptions{IncludeChildren: true})
	if err != nil {
		respondError(c, err)
		return
	}

	today, err := h.priorities.TodayPriorities(ctx, uid, 0, false)
	if err != nil {
		respondError(c, err)
		return
	}

	// Secondary panels degrade to empty rather than failing the dashboard.
	entries, err := h.journal.GetUserEntries(ctx, uid, dashboardJournalLimit)
	if err != nil {
		log.Printf("Warning: dashboard journal fetch failed for user %s: %v", uid, err)
		entries = nil
	}
	unread, err := h.notifications.CountUnread(ctx, uid)
	if err != nil {
		log.Printf("Warning: dashboard unread count failed for user %s: %v", uid, err)
		unread = 0
	}

	utils.Success(c, gin.H{
		"pillars":             pillars,
		"today":               today,
		"recent_journal":      dto.ToJournalEntryResponses(entries),
		"unread_notifications": unread,
	})
}
