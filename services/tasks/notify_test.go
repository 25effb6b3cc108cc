package tasks

import (
	"testing"

	"github.com/hibiken/asynq"
)

func TestStaffNotifyTaskRoundTrip(t *testing.T) {
	in := StaffNotifyPayload{
		Title: "New booking request",
		Body:  "Asha Mehta booked Hair Cut & Styling",
		Data:  map[string]string{"kind": "booking"},
	}
	task, opts, err := NewStaffNotifyTask(in)
	if err != nil {
		t.Fatalf("NewStaffNotifyTask: %v", err)
	}
	if task.Type() != TypeStaffNotify {
		t.Errorf("type = %q", task.Type())
	}
	if len(opts) == 0 {
		t.Error("expected retry options")
	}

	out, err := ParseStaffNotify(task)
	if err != nil {
		t.Fatalf("ParseStaffNotify: %v", err)
	}
	if out.Title != in.Title || out.Body != in.Body || out.Data["kind"] != "booking" {
		t.Errorf("payload = %+v", out)
	}
}

func TestParseStaffNotifyRejects(t *testing.T) {
	tests := []struct {
		name string
		task *asynq.Task
	}{
		{"wrong type", asynq.NewTask("reminder:send", []byte(`{}`))},
		{"bad json", asynq.NewTask(TypeStaffNotify, []byte(`{`))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseStaffNotify(tt.task); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
