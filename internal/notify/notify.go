package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Kind string

const (
	KindPending           Kind = "pending"
	KindApprovalRequired  Kind = "approvalRequired"
	KindSignatureRequired Kind = "signatureRequired"
	KindSuccess           Kind = "success"
	KindFailure           Kind = "failure"
	KindWarning           Kind = "warning"
)

// SettledDuration is how long a terminal notification stays on screen.
const SettledDuration = 8 * time.Second

// Notification is one toast-shaped event. A nil Duration means the
// notification never expires on its own (wallet confirmation latency is
// unbounded, so pending notifications carry no timeout).
type Notification struct {
	ID          string         `json:"id"`
	Kind        Kind           `json:"kind"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Link        string         `json:"link,omitempty"`
	Duration    *time.Duration `json:"durationMs,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	Dismissed   bool           `json:"dismissed"`
}

const recentCapacity = 64

// Hub fans notifications out to subscribers and keeps a bounded window of
// recent ones for the HTTP surface.
type Hub struct {
	logs *zap.SugaredLogger

	mtx    sync.Mutex
	recent []Notification
	subs   map[string]chan Notification
}

func NewHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		logs: logger,
		subs: map[string]chan Notification{},
	}
}

// Publish assigns the notification an id and timestamp, records it and fans
// it out. Slow subscribers are skipped rather than blocked on.
func (h *Hub) Publish(notification Notification) string {
	notification.ID = uuid.NewString()
	notification.CreatedAt = time.Now()

	h.mtx.Lock()
	h.recent = append(h.recent, notification)
	if len(h.recent) > recentCapacity {
		h.recent = h.recent[len(h.recent)-recentCapacity:]
	}
	h.broadcast(notification)
	h.mtx.Unlock()

	h.logs.Infow("notification published",
		"id", notification.ID,
		"kind", notification.Kind,
		"title", notification.Title)

	return notification.ID
}

// Dismiss marks a published notification as dismissed and re-broadcasts it so
// presentation layers can drop it.
func (h *Hub) Dismiss(id string) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	for i := range h.recent {
		if h.recent[i].ID != id || h.recent[i].Dismissed {
			continue
		}
		h.recent[i].Dismissed = true
		h.broadcast(h.recent[i])
		return
	}
}

// Recent returns a copy of the retained notification window, oldest first.
func (h *Hub) Recent() []Notification {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	out := make([]Notification, len(h.recent))
	copy(out, h.recent)
	return out
}

// Subscribe registers a listener. The returned cancel func must be called on
// teardown so no channel outlives its consumer.
func (h *Hub) Subscribe() (<-chan Notification, func()) {
	id := uuid.NewString()
	ch := make(chan Notification, 16)

	h.mtx.Lock()
	h.subs[id] = ch
	h.mtx.Unlock()

	cancel := func() {
		h.mtx.Lock()
		defer h.mtx.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// callers hold h.mtx
func (h *Hub) broadcast(notification Notification) {
	for _, sub := range h.subs {
		select {
		case sub <- notification:
		default:
		}
	}
}
