package sse

import (
	"sync"
)

// Change event names published by the services.
const (
	EventStaffAdded        = "staff.added"
	EventStaffRenamed      = "staff.renamed"
	EventStaffRemoved      = "staff.removed"
	EventAttendanceChanged = "attendance.changed"
)

// Event represents a change pushed to every subscriber
type Event struct {
	Event string
	Data  interface{}
}

// Hub fans out change events to all connected clients
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	buffer      int
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
		buffer:      16,
	}
}

// Subscribe registers a new subscriber and returns the event channel and cleanup function
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.buffer)
	h.subscribers[ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, ch)
			close(ch)
		})
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers
func (h *Hub) Publish(event Event) {
	if h == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}
