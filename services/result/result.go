// Package result defines the outcome type returned by every backend gateway.
//
// A Result is either a success carrying a payload or a failure carrying an
// *Error with a Kind. Callers branch with Match (both arms required) or with
// Unwrap when they only need the payload.
package result

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindValidation: input rejected before any backend call.
	KindValidation Kind = iota + 1
	// KindUnavailable: the backend handle was never constructed.
	KindUnavailable
	// KindBackend: the backend call itself failed.
	KindBackend
	// KindBusy: a submission for the same form instance is still in flight.
	KindBusy
	// KindUnexpected: anything else, including recovered panics.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnavailable:
		return "unavailable"
	case KindBackend:
		return "backend"
	case KindBusy:
		return "busy"
	case KindUnexpected:
		return "unexpected"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// UnexpectedMessage is shown for failures nobody anticipated.
const UnexpectedMessage = "An unexpected error occurred. Please try again."

// Error is the failure arm of a Result.
type Error struct {
	Kind    Kind              `json:"kind"`
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
	Cause   error             `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// MarshalText lets Kind render as its name in JSON.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Result is the outcome of a gateway call.
type Result[T any] struct {
	value T
	err   *Error
}

// Ok wraps a successful payload.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Fail wraps a failure. A nil err is treated as an unexpected failure so a
// Result can never be neither.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = &Error{Kind: KindUnexpected, Message: UnexpectedMessage}
	}
	return Result[T]{err: err}
}

// Unavailable reports a gateway whose backend handle is absent.
func Unavailable[T any](message string) Result[T] {
	return Fail[T](&Error{Kind: KindUnavailable, Message: message})
}

// Backend converts a backend error into a failure. The error text becomes the
// user-facing message unless it carries a friendlier one already.
func Backend[T any](err error) Result[T] {
	var re *Error
	if errors.As(err, &re) {
		return Fail[T](re)
	}
	return Fail[T](&Error{Kind: KindBackend, Message: err.Error(), Cause: err})
}

// Invalid reports per-field validation failures.
func Invalid[T any](message string, fields map[string]string) Result[T] {
	return Fail[T](&Error{Kind: KindValidation, Message: message, Fields: fields})
}

// IsOk reports whether r is a success.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Unwrap returns the payload and the failure, exactly one of which is meaningful.
func (r Result[T]) Unwrap() (T, *Error) { return r.value, r.err }

// Err returns the failure, or nil on success.
func (r Result[T]) Err() *Error { return r.err }

// Match calls ok or fail depending on the arm of r and returns its value.
func Match[T, R any](r Result[T], ok func(T) R, fail func(*Error) R) R {
	if r.err != nil {
		return fail(r.err)
	}
	return ok(r.value)
}

// Map transforms the payload of a success and passes failures through.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(f(r.value))
}
