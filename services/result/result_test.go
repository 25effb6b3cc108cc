package result

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestMatchCallsExactlyOneArm(t *testing.T) {
	tests := []struct {
		name string
		r    Result[int]
		want string
	}{
		{"ok", Ok(7), "ok:7"},
		{"backend", Backend[int](errors.New("boom")), "fail:backend"},
		{"unavailable", Unavailable[int]("Database not available"), "fail:unavailable"},
		{"nil failure", Fail[int](nil), "fail:unexpected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.r,
				func(v int) string { return "ok:" + string(rune('0'+v)) },
				func(e *Error) string { return "fail:" + e.Kind.String() },
			)
			if got != tt.want {
				t.Fatalf("Match() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBackendKeepsExistingError(t *testing.T) {
	inner := &Error{Kind: KindUnavailable, Message: "Storage not initialized"}
	r := Backend[string](inner)
	if r.Err() != inner {
		t.Fatalf("Backend() rewrapped a *Error: %v", r.Err())
	}

	cause := errors.New("rpc error: deadline exceeded")
	r = Backend[string](cause)
	if r.Err().Kind != KindBackend || !errors.Is(r.Err(), cause) {
		t.Fatalf("Backend() = %v, want backend kind wrapping cause", r.Err())
	}
}

func TestMapPassesFailureThrough(t *testing.T) {
	failed := Map(Unavailable[int]("nope"), func(v int) string { return "x" })
	if failed.IsOk() || failed.Err().Message != "nope" {
		t.Fatalf("Map() on failure = %+v", failed.Err())
	}
	ok := Map(Ok(2), func(v int) int { return v * 21 })
	if v, err := ok.Unwrap(); err != nil || v != 42 {
		t.Fatalf("Map() on success = %d, %v", v, err)
	}
}

func TestErrorJSON(t *testing.T) {
	e := &Error{Kind: KindValidation, Message: "Please fix the highlighted fields", Fields: map[string]string{"name": "Name is required"}}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, want := range []string{`"kind":"validation"`, `"error":"Please fix the highlighted fields"`, `"name":"Name is required"`} {
		if !strings.Contains(s, want) {
			t.Errorf("json %s missing %s", s, want)
		}
	}
}
