package client

import (
	"sort"
	"sync"
	"time"
)

// NotificationTTL is how long a non-error notification stays visible.
const NotificationTTL = 5 * time.Second

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

type Notification struct {
	ID        uint64
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Notifier is an ephemeral notification queue. Error notifications stay until
// dismissed; the others expire NotificationTTL after creation.
type Notifier struct {
	mu    sync.Mutex
	now   func() time.Time
	seq   uint64
	items []Notification
}

// NewNotifier creates a notifier. now may be nil to use time.Now.
func NewNotifier(now func() time.Time) *Notifier {
	if now == nil {
		now = time.Now
	}
	return &Notifier{now: now}
}

// Notify queues a message and returns its id.
func (n *Notifier) Notify(level Level, msg string) uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	n.items = append(n.items, Notification{ID: n.seq, Level: level, Message: msg, CreatedAt: n.now()})
	return n.seq
}

// Dismiss removes a notification. It reports whether id was present.
func (n *Notifier) Dismiss(id uint64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, it := range n.items {
		if it.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return true
		}
	}
	return false
}

// Active drops expired notifications and returns the rest, newest first.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	kept := n.items[:0]
	for _, it := range n.items {
		if it.Level != LevelError && now.Sub(it.CreatedAt) >= NotificationTTL {
			continue
		}
		kept = append(kept, it)
	}
	n.items = kept

	out := append([]Notification(nil), kept...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}
