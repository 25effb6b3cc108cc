package notification

import (
	"context"
	"fmt"

	"keshwala/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Enqueuer is the part of the asynq client used here. *asynq.Client
// satisfies it.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueuedNotificationService hands staff alerts to the Redis task queue. A
// worker delivers them later with retries.
type QueuedNotificationService struct {
	queue  Enqueuer
	logger *zap.Logger
}

func NewQueuedNotificationService(queue Enqueuer, logger *zap.Logger) *QueuedNotificationService {
	return &QueuedNotificationService{queue: queue, logger: logger}
}

// NotifyStaff enqueues the alert.
func (s *QueuedNotificationService) NotifyStaff(ctx context.Context, title, body string, data map[string]string) error {
	task, opts, err := tasks.NewStaffNotifyTask(tasks.StaffNotifyPayload{Title: title, Body: body, Data: data})
	if err != nil {
		return fmt.Errorf("NotifyStaff: failed to build task: %w", err)
	}
	info, err := s.queue.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("NotifyStaff: failed to enqueue: %w", err)
	}
	s.logger.Debug("staff notification queued", zap.String("taskID", info.ID), zap.String("queue", info.Queue))
	return nil
}
