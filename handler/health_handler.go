package handler

import (
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	mongoClient *mongo.Client
	redisClient *redis.Client
	startedAt   time.Time
}

func NewHealthHandler(mongoClient *mongo.Client, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		mongoClient: mongoClient,
		redisClient: redisClient,
		startedAt:   time.Now(),
	}
}

// GetHealth reports liveness plus dependency status. Redis is optional, so a
// missing or unreachable event queue degrades the report without failing it.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx := c.Request.Context()

	status := "ok"
	mongoStatus := "ok"
	if err := h.mongoClient.Ping(ctx, nil); err != nil {
		mongoStatus = "unreachable"
		status = "degraded"
	}

	redisStatus := "disabled"
	if h.redisClient != nil {
		redisStatus = "ok"
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			redisStatus = "unreachable"
			status = "degraded"
		}
	}

	utils.Success(c, gin.H{
		"status":         status,
		"mongo":          mongoStatus,
		"redis":          redisStatus,
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
	})
}
