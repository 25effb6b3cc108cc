package auth

import (
	"sync"

	"keshwala/models"
)

// Event reports the current user of a session. A nil User means signed out.
type Event struct {
	User *models.User `json:"user"`
}

type subscriber struct {
	ch chan Event
}

// Watcher fans auth-state changes out to per-session subscribers. Each
// subscriber channel holds one event; a slow reader skips intermediate
// events but always sees the latest one.
type Watcher struct {
	mu   sync.Mutex
	subs map[string]map[*subscriber]struct{}
}

// NewWatcher returns a Watcher with no subscribers.
func NewWatcher() *Watcher {
	return &Watcher{subs: make(map[string]map[*subscriber]struct{})}
}

// Subscribe registers a listener for sessionID, then queues the result of
// current as its first event unless a change was published after
// registration, which is at least as new. The returned cancel func closes
// the channel; calling it more than once is harmless.
func (w *Watcher) Subscribe(sessionID string, current func() *models.User) (<-chan Event, func()) {
	sub := &subscriber{ch: make(chan Event, 1)}

	w.mu.Lock()
	if w.subs[sessionID] == nil {
		w.subs[sessionID] = make(map[*subscriber]struct{})
	}
	w.subs[sessionID][sub] = struct{}{}
	w.mu.Unlock()

	user := current()
	w.mu.Lock()
	select {
	case sub.ch <- Event{User: user}:
	default:
	}
	w.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			delete(w.subs[sessionID], sub)
			if len(w.subs[sessionID]) == 0 {
				delete(w.subs, sessionID)
			}
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish delivers user to every subscriber of sessionID.
func (w *Watcher) Publish(sessionID string, user *models.User) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for sub := range w.subs[sessionID] {
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- Event{User: user}
	}
}

// Subscribers returns the number of live subscriptions for sessionID.
func (w *Watcher) Subscribers(sessionID string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs[sessionID])
}
