// Package toast keeps the short notifications shown after each action.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

const (
	DefaultDuration = 3 * time.Second
	maxVisible      = 4
)

type Toast struct {
	ID        string
	Message   string
	Kind      Kind
	Duration  time.Duration
	CreatedAt time.Time
}

// Expired reports whether t should be gone at now. A zero duration never expires.
func (t Toast) Expired(now time.Time) bool {
	return t.Duration > 0 && !now.Before(t.CreatedAt.Add(t.Duration))
}

// Queue holds the visible toasts. It is safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
	now    func() time.Time
}

func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Show adds a toast with the default duration.
func (q *Queue) Show(message string, kind Kind) (Toast, bool) {
	return q.ShowFor(message, kind, DefaultDuration)
}

// ShowFor adds a toast that expires after d; d <= 0 keeps it until removed.
// An identical toast (message and kind) already visible is returned instead
// and the second result is false. Only the newest four toasts are kept.
func (q *Queue) ShowFor(message string, kind Kind, d time.Duration) (Toast, bool) {
	if kind == "" {
		kind = Info
	}
	if d < 0 {
		d = 0
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for _, t := range q.toasts {
		if t.Message == message && t.Kind == kind {
			return t, false
		}
	}

	t := Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		Duration:  d,
		CreatedAt: q.now(),
	}

	q.toasts = append(q.toasts, t)
	if len(q.toasts) > maxVisible {
		q.toasts = append([]Toast(nil), q.toasts[len(q.toasts)-maxVisible:]...)
	}

	return t, true
}

func (q *Queue) Remove(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Expire drops the toasts whose duration elapsed at now and returns them.
func (q *Queue) Expire(now time.Time) []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	var expired []Toast
	kept := q.toasts[:0]
	for _, t := range q.toasts {
		if t.Expired(now) {
			expired = append(expired, t)
			continue
		}
		kept = append(kept, t)
	}
	q.toasts = kept

	return expired
}

// Visible returns a copy of the current toasts, oldest first.
func (q *Queue) Visible() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Toast(nil), q.toasts...)
}
