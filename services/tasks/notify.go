package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeStaffNotify = "staff:notify"

// StaffNotifyPayload is a queued staff alert.
type StaffNotifyPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// NewStaffNotifyTask builds the task for p together with its queue options.
func NewStaffNotifyTask(p StaffNotifyPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeStaffNotify, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
		asynq.Retention(24 * time.Hour),
	}

	return task, opts, nil
}

// ParseStaffNotify decodes the payload of a TypeStaffNotify task.
func ParseStaffNotify(task *asynq.Task) (StaffNotifyPayload, error) {
	var p StaffNotifyPayload
	if task.Type() != TypeStaffNotify {
		return p, fmt.Errorf("tasks: unexpected task type %q", task.Type())
	}
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("tasks: invalid staff notify payload: %w", err)
	}
	return p, nil
}
