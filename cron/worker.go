package cron

import (
	"context"
	"fmt"
	"time"

	"keshwala/services/notification"
	"keshwala/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NotifyWorker delivers queued staff alerts through the direct notifier.
type NotifyWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger

	// ping checks that Redis answers; run starts processing. Both are
	// fields so the startup loop can be driven without a Redis server.
	ping    func() error
	run     func() error
	backoff func(attempt int) time.Duration
}

const maxStartAttempts = 5

func NewNotifyWorker(opt asynq.RedisClientOpt, notifier notification.NotificationService, logger *zap.Logger) *NotifyWorker {
	srv := asynq.NewServer(
		opt,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)
	w := &NotifyWorker{srv: srv, mux: NewNotifyMux(notifier, logger), logger: logger}
	w.ping = func() error {
		inspector := asynq.NewInspector(opt)
		defer inspector.Close()
		_, err := inspector.Queues()
		return err
	}
	w.run = func() error { return w.srv.Start(w.mux) }
	w.backoff = func(attempt int) time.Duration { return time.Duration(attempt*2) * time.Second }
	return w
}

// NewNotifyMux routes TypeStaffNotify tasks to HandleStaffNotify.
func NewNotifyMux(notifier notification.NotificationService, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeStaffNotify, HandleStaffNotify(notifier, logger))
	return mux
}

// HandleStaffNotify sends one queued alert. Malformed payloads are skipped
// since retrying cannot fix them.
func HandleStaffNotify(notifier notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseStaffNotify(task)
		if err != nil {
			logger.Warn("dropping staff notification", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		if err := notifier.NotifyStaff(ctx, p.Title, p.Body, p.Data); err != nil {
			logger.Warn("staff notification delivery failed", zap.String("title", p.Title), zap.Error(err))
			return err
		}
		return nil
	}
}

// Start runs the worker in the background once Redis answers a ping,
// retrying the ping a few times with a growing delay.
func (w *NotifyWorker) Start(ctx context.Context) {
	go func() {
		if err := w.connect(ctx); err != nil {
			w.logger.Error("notification worker not started; queued alerts wait for the next start", zap.Error(err))
			return
		}
		w.logger.Info("notification worker started")
	}()
}

func (w *NotifyWorker) connect(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= maxStartAttempts; attempt++ {
		if err = w.ping(); err == nil {
			return w.run()
		}
		w.logger.Warn("redis not reachable for notification worker",
			zap.Int("attempt", attempt), zap.Int("maxAttempts", maxStartAttempts), zap.Error(err))
		if attempt == maxStartAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.backoff(attempt)):
		}
	}
	return fmt.Errorf("redis unreachable after %d attempts: %w", maxStartAttempts, err)
}

// Shutdown stops fetching new tasks and waits for active ones.
func (w *NotifyWorker) Shutdown() {
	w.srv.Shutdown()
}
