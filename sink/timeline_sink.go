package sink

import (
	"chat-dispatch/domain/event"
	"context"
	"sync"
)

// Timeline keeps the latest moderation actions (kicks, flood mutes, censorship hits)
// for operators. Older entries are dropped once the capacity is reached.
type Timeline struct {
	mu       sync.RWMutex
	capacity int
	events   []event.Event
}

func NewTimeline(capacity int) *Timeline {
	if capacity < 1 {
		capacity = 1
	}
	return &Timeline{capacity: capacity}
}

func (t *Timeline) Consume(_ context.Context, e event.Event) error {
	switch e.Type {
	case event.SessionKickedType, event.FloodMutedType, event.CensorshipHitType:
	default:
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, e)
	if len(t.events) > t.capacity {
		t.events = t.events[len(t.events)-t.capacity:]
	}
	return nil
}

// Recent returns the kept actions, newest last.
func (t *Timeline) Recent() []event.Event {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]event.Event, len(t.events))
	copy(out, t.events)
	return out
}
