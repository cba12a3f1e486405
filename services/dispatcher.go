package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"main/model"
	"main/utils"

	"github.com/redis/go-redis/v9"
)

// NotificationWriter is the slice of the notification store the dispatcher
// needs.
type NotificationWriter interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
}

// Dispatcher drains the outbox queue and materializes events as notification
// rows. It owns the retry policy for side-effect delivery: a store failure
// re-queues the event once, then drops it with a log line.
type Dispatcher struct {
	Client        *redis.Client
	QueueKey      string
	Notifications NotificationWriter
}

const maxDispatchAttempts = 2

// Run blocks until the context is canceled, popping events off the queue.
func (d *Dispatcher) Run(ctx context.Context) {
	log.Printf("Event dispatcher started on queue %s", d.QueueKey)
	for {
		if ctx.Err() != nil {
			log.Println("Event dispatcher stopped")
			return
		}

		result, err := d.Client.BRPop(ctx, 5*time.Second, d.QueueKey).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Event dispatcher stopped")
				return
			}
			log.Printf("warning: outbox pop failed: %v", err)
			utils.TrackError("outbox", "pop_failed")
			time.Sleep(time.Second)
			continue
		}
		// BRPop returns [key, value]
		if len(result) == 2 {
			d.dispatch(ctx, []byte(result[1]))
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, payload []byte) {
	var event model.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		log.Printf("warning: dropping undecodable outbox event: %v", err)
		utils.TrackOutboxEvent("dispatch_failed")
		return
	}

	notification := &model.Notification{
		NotificationID: event.EventID,
		UserID:         event.UserID,
		Type:           event.Type,
		Title:          event.Title,
		Message:        event.Message,
		TaskID:         event.TaskID,
		ProjectID:      event.ProjectID,
		CreatedAt:      event.EmittedAt,
	}

	if err := d.Notifications.CreateNotification(ctx, notification); err != nil {
		event.Attempts++
		if event.Attempts >= maxDispatchAttempts {
			log.Printf("warning: dropping event %s after %d attempts: %v", event.EventID, event.Attempts, err)
			utils.TrackOutboxEvent("dispatch_failed")
			return
		}
		if requeued, rerr := json.Marshal(&event); rerr == nil {
			if perr := d.Client.LPush(ctx, d.QueueKey, requeued).Err(); perr != nil {
				log.Printf("warning: failed to re-queue event %s: %v", event.EventID, perr)
				utils.TrackOutboxEvent("dispatch_failed")
			}
		}
		return
	}
	utils.TrackOutboxEvent("dispatched")
}
