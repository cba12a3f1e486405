package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"main/model"
)

type fakeNotificationWriter struct {
	created []*model.Notification
	err     error
}

func (w *fakeNotificationWriter) CreateNotification(ctx context.Context, n *model.Notification) error {
	if w.err != nil {
		return w.err
	}
	w.created = append(w.created, n)
	return nil
}

func TestDispatchCreatesNotification(t *testing.T) {
	writer := &fakeNotificationWriter{}
	d := &Dispatcher{QueueKey: "test:events", Notifications: writer}

	event := model.Event{
		EventID:   "evt-1",
		UserID:    "user-1",
		Type:      model.NotificationTaskUnblocked,
		Title:     "Task unblocked: Publish",
		Message:   "All prerequisites are complete.",
		TaskID:    "task-1",
		ProjectID: "proj-1",
		EmittedAt: time.Now(),
	}
	payload, _ := json.Marshal(&event)

	d.dispatch(context.Background(), payload)

	if len(writer.created) != 1 {
		t.Fatalf("created %d notifications, want 1", len(writer.created))
	}
	n := writer.created[0]
	if n.NotificationID != "evt-1" {
		t.Errorf("NotificationID = %s, want the event id for idempotency", n.NotificationID)
	}
	if n.Type != model.NotificationTaskUnblocked || n.TaskID != "task-1" {
		t.Errorf("notification fields: %+v", n)
	}
	if n.Read {
		t.Error("new notification must start unread")
	}
}

func TestDispatchDropsUndecodablePayload(t *testing.T) {
	writer := &fakeNotificationWriter{}
	d := &Dispatcher{QueueKey: "test:events", Notifications: writer}

	d.dispatch(context.Background(), []byte("not json"))
	if len(writer.created) != 0 {
		t.Errorf("undecodable payload must be dropped, created %d", len(writer.created))
	}
}

func TestDispatchDropsAfterMaxAttempts(t *testing.T) {
	writer := &fakeNotificationWriter{err: errors.New("write failed")}
	d := &Dispatcher{QueueKey: "test:events", Notifications: writer}

	// An event already at attempts-1 is dropped, not re-queued, so the nil
	// redis client is never touched.
	event := model.Event{EventID: "evt-1", UserID: "user-1", Attempts: maxDispatchAttempts - 1}
	payload, _ := json.Marshal(&event)

	d.dispatch(context.Background(), payload)
	if len(writer.created) != 0 {
		t.Errorf("failed writes must not record notifications")
	}
}
