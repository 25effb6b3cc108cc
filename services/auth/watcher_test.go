package auth

import (
	"testing"

	"keshwala/models"
)

func signedOut() *models.User { return nil }

func TestWatcherLatestWins(t *testing.T) {
	w := NewWatcher()
	events, cancel := w.Subscribe("s", signedOut)
	defer cancel()

	a := &models.User{UID: "a"}
	b := &models.User{UID: "b"}
	w.Publish("s", a)
	w.Publish("s", b)

	ev := <-events
	if ev.User == nil || ev.User.UID != "b" {
		t.Fatalf("got %+v, want latest user b", ev.User)
	}
	select {
	case ev := <-events:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestWatcherScopesBySessionAndCancels(t *testing.T) {
	w := NewWatcher()
	e1, cancel1 := w.Subscribe("s1", signedOut)
	e2, cancel2 := w.Subscribe("s2", signedOut)
	defer cancel2()
	<-e1
	<-e2

	w.Publish("s1", &models.User{UID: "x"})
	select {
	case ev := <-e2:
		t.Fatalf("s2 received s1 event %+v", ev)
	default:
	}

	cancel1()
	cancel1()
	if _, open := <-e1; open {
		// The s1 event was queued before cancel; drain it and expect close.
		if _, open := <-e1; open {
			t.Fatal("channel not closed after cancel")
		}
	}
	if n := w.Subscribers("s1"); n != 0 {
		t.Fatalf("Subscribers = %d after cancel", n)
	}
	w.Publish("s1", nil) // must not panic on a cancelled subscriber
}

func TestWatcherKeepsChangeDuringSubscribe(t *testing.T) {
	w := NewWatcher()
	asha := &models.User{UID: "asha"}

	// The session signs in after the current state was read but before it
	// was queued; the stale read must not hide the sign-in.
	events, cancel := w.Subscribe("s", func() *models.User {
		w.Publish("s", asha)
		return nil
	})
	defer cancel()

	ev := <-events
	if ev.User == nil || ev.User.UID != "asha" {
		t.Fatalf("first event = %+v, want the sign-in", ev.User)
	}
	select {
	case ev := <-events:
		t.Fatalf("unexpected stale event %+v", ev)
	default:
	}
}

func TestWatcherQueuesCurrentState(t *testing.T) {
	w := NewWatcher()
	events, cancel := w.Subscribe("s", func() *models.User { return &models.User{UID: "b"} })
	defer cancel()
	if ev := <-events; ev.User == nil || ev.User.UID != "b" {
		t.Fatalf("first event = %+v", ev.User)
	}
}
