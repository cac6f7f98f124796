package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event names published by the console.
const (
	EventConnected        = "connected"
	EventPing             = "ping"
	EventLeaveSubmitted   = "leave.submitted"
	EventLeaveResolved    = "leave.resolved"
	EventAttendanceManual = "attendance.manual"
	EventAttendanceVoided = "attendance.voided"
)

// Event represents an SSE event to be sent to subscribers
type Event struct {
	ID     string
	UserID string
	Event  string
	Data   interface{}
	SentAt time.Time
}

// NewEvent stamps an event with a fresh ID.
func NewEvent(userID, name string, data interface{}) Event {
	return Event{
		ID:     uuid.NewString(),
		UserID: userID,
		Event:  name,
		Data:   data,
		SentAt: time.Now(),
	}
}

// WriteTo writes e as one SSE frame.
func (e Event) WriteTo(w io.Writer) (int64, error) {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return 0, err
	}
	var n int
	if e.ID != "" {
		n, err = fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", e.ID, e.Event, data)
	} else {
		n, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Event, data)
	}
	return int64(n), err
}

// GroupManagers holds every connection opened by an ADMIN or RRHH session.
const GroupManagers = "managers"

// Publisher is the send side of the hub, as used by services.
type Publisher interface {
	Publish(userID string, event Event)
}

// GroupPublisher also reaches every user currently joined to a group.
type GroupPublisher interface {
	Publisher
	PublishToGroup(group string, event Event)
}

// Hub manages SSE subscribers and event broadcasting
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	// groups counts open connections per member so a user leaves a group
	// only when their last connection closes.
	groups map[string]map[string]int
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		groups:      make(map[string]map[string]int),
	}
}

// Subscribe registers a new subscriber for a user, joined to groups, and
// returns the event channel and cleanup function
func (h *Hub) Subscribe(userID string, groups ...string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Event]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}

	for _, g := range groups {
		if h.groups[g] == nil {
			h.groups[g] = make(map[string]int)
		}
		h.groups[g][userID]++
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[userID], ch)
			close(ch)
			if len(h.subscribers[userID]) == 0 {
				delete(h.subscribers, userID)
			}
			for _, g := range groups {
				if h.groups[g][userID]--; h.groups[g][userID] <= 0 {
					delete(h.groups[g], userID)
				}
				if len(h.groups[g]) == 0 {
					delete(h.groups, g)
				}
			}
		})
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a specific user
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[userID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// PublishToMany sends an event to multiple users
func (h *Hub) PublishToMany(userIDs []string, event Event) {
	for _, userID := range userIDs {
		eventCopy := event
		eventCopy.UserID = userID
		h.Publish(userID, eventCopy)
	}
}

// PublishToGroup sends an event to every user with an open connection in group.
func (h *Hub) PublishToGroup(group string, event Event) {
	h.mu.RLock()
	members := make([]string, 0, len(h.groups[group]))
	for userID := range h.groups[group] {
		members = append(members, userID)
	}
	h.mu.RUnlock()

	h.PublishToMany(members, event)
}
