package notification

import (
	"context"
	"errors"
	"testing"

	"keshwala/services/tasks"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type recordingSender struct {
	sent []*messaging.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, m *messaging.Message) (string, error) {
	r.sent = append(r.sent, m)
	return "projects/p/messages/1", r.err
}

func TestNotifyStaffPublishesToTopic(t *testing.T) {
	sender := &recordingSender{}
	svc := NewNotificationService(sender, "staff", zap.NewNop())
	err := svc.NotifyStaff(context.Background(), "New booking", "Asha, 2025-01-10 10:00 AM", map[string]string{"id": "b1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages", len(sender.sent))
	}
	m := sender.sent[0]
	if m.Topic != "staff" || m.Notification.Title != "New booking" || m.Data["id"] != "b1" {
		t.Fatalf("message = %+v", m)
	}
}

func TestNotifyStaffDisabledAndFailing(t *testing.T) {
	ctx := context.Background()
	if err := NewNotificationService(nil, "staff", zap.NewNop()).NotifyStaff(ctx, "t", "b", nil); err != nil {
		t.Fatalf("nil sender: %v", err)
	}
	sender := &recordingSender{}
	if err := NewNotificationService(sender, "", zap.NewNop()).NotifyStaff(ctx, "t", "b", nil); err != nil || len(sender.sent) != 0 {
		t.Fatalf("empty topic: %v, sent %d", err, len(sender.sent))
	}
	sender.err = errors.New("unavailable")
	if err := NewNotificationService(sender, "staff", zap.NewNop()).NotifyStaff(ctx, "t", "b", nil); err == nil {
		t.Fatal("send error not reported")
	}
}

type recordingQueue struct {
	tasks []*asynq.Task
	err   error
}

func (q *recordingQueue) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	return &asynq.TaskInfo{ID: "t1", Queue: "default"}, nil
}

func TestQueuedNotifyStaffEnqueues(t *testing.T) {
	queue := &recordingQueue{}
	svc := NewQueuedNotificationService(queue, zap.NewNop())
	if err := svc.NotifyStaff(context.Background(), "New message: Wig fitting", "Asha (asha@example.com)", nil); err != nil {
		t.Fatal(err)
	}
	if len(queue.tasks) != 1 {
		t.Fatalf("queued %d tasks", len(queue.tasks))
	}
	p, err := tasks.ParseStaffNotify(queue.tasks[0])
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "New message: Wig fitting" || p.Body != "Asha (asha@example.com)" {
		t.Errorf("payload = %+v", p)
	}

	queue.err = errors.New("redis: connection refused")
	if err := svc.NotifyStaff(context.Background(), "t", "b", nil); err == nil {
		t.Fatal("expected enqueue failure to surface")
	}
}
