// Package forms runs the submission lifecycle shared by every form on the
// site: idle, submitting, then success or error.
//
// Each rendered form is an instance with its own ID. An instance is stored on
// its first submission; reads of an ID that was never submitted report a
// fresh idle form and store nothing. Only one submission per instance can be
// in flight; a second one is refused with KindBusy and never reaches the
// backend.
package forms

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"keshwala/services/result"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the lifecycle position of a form instance.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// IdleTTL is how long an untouched instance is kept.
const IdleTTL = 30 * time.Minute

// SubmitFunc performs the backend call for a validated input. The success
// payload is shown to the visitor unless Config.SuccessMessage overrides it.
type SubmitFunc[T any] func(ctx context.Context, input T) result.Result[string]

// Config describes one kind of form.
type Config[T any] struct {
	Kind   string
	Submit SubmitFunc[T]
	// Messages maps "field.tag" (or just "field") to the inline error shown
	// when that rule fails. Field names are the json names.
	Messages map[string]string
	// SuccessMessage replaces the submit payload in the confirmation view.
	SuccessMessage string
	// FailureMessage is shown when a failure carries no text of its own.
	FailureMessage string
	// ResetAfter returns a successful instance to idle. Zero keeps the
	// confirmation until the visitor dismisses it.
	ResetAfter time.Duration
}

// Snapshot is the externally visible state of an instance.
type Snapshot[T any] struct {
	ID      string            `json:"id"`
	Kind    string            `json:"kind"`
	State   State             `json:"state"`
	Values  T                 `json:"values"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Disabled reports whether the submit control should be disabled.
func (s Snapshot[T]) Disabled() bool { return s.State == StateSubmitting }

type instance[T any] struct {
	state     State
	values    T
	message   string
	err       *result.Error
	settledAt time.Time
	touched   time.Time
}

// Form holds every live instance of one kind of form.
type Form[T any] struct {
	cfg      Config[T]
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time

	mu        sync.Mutex
	instances map[string]*instance[T]
}

// New returns a Form for cfg validated by v.
func New[T any](cfg Config[T], v *validator.Validate, logger *zap.Logger) *Form[T] {
	return &Form[T]{
		cfg:       cfg,
		validate:  v,
		logger:    logger.With(zap.String("form", cfg.Kind)),
		now:       time.Now,
		instances: make(map[string]*instance[T]),
	}
}

// WithClock replaces the time source.
func (f *Form[T]) WithClock(now func() time.Time) *Form[T] {
	f.now = now
	return f
}

// Kind returns the form kind.
func (f *Form[T]) Kind() string { return f.cfg.Kind }

// Open returns an idle snapshot under a new ID. Nothing is stored until the
// first Submit with that ID.
func (f *Form[T]) Open() Snapshot[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked(uuid.NewString(), &instance[T]{state: StateIdle})
}

// Get returns the snapshot of instance id. Unknown or expired IDs are
// reported as idle without being stored; IDs that are not UUIDs are
// replaced.
func (f *Form[T]) Get(id string) Snapshot[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	inst, id := f.peekLocked(id)
	return f.snapshotLocked(id, inst)
}

// Dismiss returns an instance showing its confirmation to idle.
func (f *Form[T]) Dismiss(id string) Snapshot[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	inst, id := f.peekLocked(id)
	if inst.state == StateSuccess {
		inst.state = StateIdle
		inst.message = ""
	}
	return f.snapshotLocked(id, inst)
}

// Submit validates input and, when it passes, runs the submit callback once.
// The returned error is nil exactly when the instance ends in StateSuccess.
func (f *Form[T]) Submit(ctx context.Context, id string, input T) (Snapshot[T], *result.Error) {
	if n, ok := any(&input).(interface{ Normalize() }); ok {
		n.Normalize()
	}

	f.mu.Lock()
	inst, id := f.lookupLocked(id)
	if inst.state == StateSubmitting {
		snap := f.snapshotLocked(id, inst)
		f.mu.Unlock()
		f.logger.Debug("submit refused while in flight", zap.String("id", id))
		return snap, &result.Error{Kind: result.KindBusy, Message: "Your previous submission is still being processed."}
	}

	if fields, first := f.check(input); len(fields) > 0 {
		inst.state = StateError
		inst.values = input
		inst.message = ""
		inst.err = &result.Error{Kind: result.KindValidation, Message: first, Fields: fields}
		snap := f.snapshotLocked(id, inst)
		f.mu.Unlock()
		return snap, inst.err
	}

	inst.state = StateSubmitting
	inst.values = input
	inst.message = ""
	inst.err = nil
	f.mu.Unlock()

	res := f.run(ctx, input)

	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.now()
	inst.touched = now
	msg, rerr := res.Unwrap()
	if rerr != nil {
		if rerr.Message == "" {
			rerr.Message = f.cfg.FailureMessage
		}
		inst.state = StateError
		inst.err = rerr
		f.logger.Warn("submission failed", zap.String("id", id), zap.String("kind", rerr.Kind.String()), zap.Error(rerr))
		return f.snapshotLocked(id, inst), rerr
	}

	var zero T
	inst.state = StateSuccess
	inst.values = zero
	inst.settledAt = now
	inst.message = msg
	if f.cfg.SuccessMessage != "" {
		inst.message = f.cfg.SuccessMessage
	}
	f.logger.Info("submission succeeded", zap.String("id", id))
	return f.snapshotLocked(id, inst), nil
}

// Validate runs the rule set without touching any instance.
func (f *Form[T]) Validate(input T) map[string]string {
	if n, ok := any(&input).(interface{ Normalize() }); ok {
		n.Normalize()
	}
	fields, _ := f.check(input)
	return fields
}

// Prune drops instances idle for longer than IdleTTL.
func (f *Form[T]) Prune() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pruneLocked(f.now())
}

// Len returns the number of live instances.
func (f *Form[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.instances)
}

func (f *Form[T]) run(ctx context.Context, input T) (res result.Result[string]) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("submit callback panicked", zap.Any("panic", r))
			res = result.Fail[string](&result.Error{
				Kind:    result.KindUnexpected,
				Message: result.UnexpectedMessage,
				Cause:   fmt.Errorf("panic: %v", r),
			})
		}
	}()
	return f.cfg.Submit(ctx, input)
}

// check returns the failing fields and the message of the first one in
// declaration order.
func (f *Form[T]) check(input T) (map[string]string, string) {
	err := f.validate.Struct(input)
	if err == nil {
		return nil, ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}, err.Error()
	}
	fields := make(map[string]string, len(verrs))
	var first string
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		msg := fieldMessage(f.cfg.Messages, fe.Field(), fe.Tag())
		fields[fe.Field()] = msg
		if first == "" {
			first = msg
		}
	}
	return fields, first
}

func fieldMessage(messages map[string]string, field, tag string) string {
	if m, ok := messages[field+"."+tag]; ok {
		return m
	}
	if m, ok := messages[field]; ok {
		return m
	}
	return fmt.Sprintf("%s is invalid", field)
}

// lookupLocked returns the instance for id, storing a new one when id is
// unknown. Submit is the only caller.
func (f *Form[T]) lookupLocked(id string) (*instance[T], string) {
	now := f.now()
	inst, id := f.peekLocked(id)
	if _, stored := f.instances[id]; !stored {
		f.pruneLocked(now)
		f.instances[id] = inst
	}
	inst.touched = now
	return inst, id
}

// peekLocked returns the stored instance for id, or a detached idle one.
// A stored success instance reverts to idle once ResetAfter has passed.
func (f *Form[T]) peekLocked(id string) (*instance[T], string) {
	inst, ok := f.instances[id]
	if !ok {
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		return &instance[T]{state: StateIdle}, id
	}
	now := f.now()
	if inst.state == StateSuccess && f.cfg.ResetAfter > 0 && now.Sub(inst.settledAt) >= f.cfg.ResetAfter {
		inst.state = StateIdle
		inst.message = ""
	}
	inst.touched = now
	return inst, id
}

func (f *Form[T]) pruneLocked(now time.Time) int {
	n := 0
	for id, inst := range f.instances {
		if inst.state != StateSubmitting && now.Sub(inst.touched) > IdleTTL {
			delete(f.instances, id)
			n++
		}
	}
	return n
}

func (f *Form[T]) snapshotLocked(id string, inst *instance[T]) Snapshot[T] {
	snap := Snapshot[T]{
		ID:      id,
		Kind:    f.cfg.Kind,
		State:   inst.state,
		Values:  inst.values,
		Message: inst.message,
	}
	if r, ok := any(&snap.Values).(interface{ Redact() }); ok {
		r.Redact()
	}
	if inst.state == StateError && inst.err != nil {
		snap.Error = inst.err.Message
		snap.Fields = inst.err.Fields
	}
	return snap
}
