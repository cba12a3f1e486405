package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

// RedisEventPublisher pushes outbox events onto a Redis list. The primary
// write path treats Publish as best-effort; delivery and retry belong to the
// dispatcher on the other end of the queue.
type RedisEventPublisher struct {
	Client   *redis.Client
	QueueKey string
}

// NewRedisEventPublisher connects to Redis and verifies the connection.
func NewRedisEventPublisher(redisURL, queueKey string) (*RedisEventPublisher, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisEventPublisher{Client: client, QueueKey: queueKey}, nil
}

func (p *RedisEventPublisher) Publish(ctx context.Context, event *model.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %v", event.EventID, err)
	}
	if err := p.Client.LPush(ctx, p.QueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue event %s: %v", event.EventID, err)
	}
	return nil
}

func (p *RedisEventPublisher) Close() error {
	return p.Client.Close()
}
