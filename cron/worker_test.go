package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"keshwala/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type staffAlert struct {
	title, body string
	data        map[string]string
}

type recordingNotifier struct {
	sent []staffAlert
	err  error
}

func (r *recordingNotifier) NotifyStaff(_ context.Context, title, body string, data map[string]string) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, staffAlert{title, body, data})
	return nil
}

func TestHandleStaffNotifyDelivers(t *testing.T) {
	notifier := &recordingNotifier{}
	task, _, err := tasks.NewStaffNotifyTask(tasks.StaffNotifyPayload{
		Title: "New booking request",
		Body:  "Asha Mehta",
		Data:  map[string]string{"kind": "booking"},
	})
	if err != nil {
		t.Fatal(err)
	}

	mux := NewNotifyMux(notifier, zap.NewNop())
	if err := mux.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("ProcessTask: %v", err)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].title != "New booking request" || notifier.sent[0].data["kind"] != "booking" {
		t.Fatalf("sent = %+v", notifier.sent)
	}
}

func TestHandleStaffNotifyFailures(t *testing.T) {
	handler := HandleStaffNotify(&recordingNotifier{err: errors.New("fcm unavailable")}, zap.NewNop())

	task, _, _ := tasks.NewStaffNotifyTask(tasks.StaffNotifyPayload{Title: "t", Body: "b"})
	err := handler(context.Background(), task)
	if err == nil || errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("delivery failure should be retried, got %v", err)
	}

	err = handler(context.Background(), asynq.NewTask(tasks.TypeStaffNotify, []byte("not json")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("malformed payload should skip retries, got %v", err)
	}
}

func newStartupWorker(pingFailures int, calls *[]string) *NotifyWorker {
	failures := pingFailures
	return &NotifyWorker{
		logger: zap.NewNop(),
		ping: func() error {
			*calls = append(*calls, "ping")
			if failures > 0 {
				failures--
				return errors.New("dial tcp: connection refused")
			}
			return nil
		},
		run: func() error {
			*calls = append(*calls, "run")
			return nil
		},
		backoff: func(int) time.Duration { return 0 },
	}
}

func TestConnectRetriesPingBeforeStarting(t *testing.T) {
	var calls []string
	w := newStartupWorker(2, &calls)
	if err := w.connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	want := []string{"ping", "ping", "ping", "run"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestConnectGivesUpWithoutStarting(t *testing.T) {
	var calls []string
	w := newStartupWorker(maxStartAttempts, &calls)
	if err := w.connect(context.Background()); err == nil {
		t.Fatal("expected an error when redis never answers")
	}
	if len(calls) != maxStartAttempts {
		t.Fatalf("calls = %v, want %d pings", calls, maxStartAttempts)
	}
	for _, c := range calls {
		if c == "run" {
			t.Fatalf("worker started without redis: %v", calls)
		}
	}
}

func TestConnectStopsOnCancel(t *testing.T) {
	var calls []string
	w := newStartupWorker(maxStartAttempts, &calls)
	w.backoff = func(int) time.Duration { return time.Hour }
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.connect(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(calls) != 1 {
		t.Fatalf("calls = %v, want a single ping", calls)
	}
}
