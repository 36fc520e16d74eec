package notification

import (
	"fmt"
	"log"
	"sync"
)

// Hub maintains the mapping from a hospital id to the set of live
// sessions subscribed to that hospital's notifications and performs
// fan-out. It is the only place group membership is read or written.
type Hub struct {
	mu     sync.RWMutex
	groups map[uint]map[*Session]struct{}
}

func NewHub() *Hub {
	return &Hub{
		groups: make(map[uint]map[*Session]struct{}),
	}
}

// Join adds the session to the hospital's group. Joining the group the
// session is already in is a no-op. A session is bound to exactly one
// hospital at construction, so joining any other group is rejected.
func (h *Hub) Join(hospitalID uint, s *Session) error {
	if s.hospitalID != hospitalID {
		return fmt.Errorf("session bound to hospital %d cannot join group %d", s.hospitalID, hospitalID)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.groups[hospitalID]
	if !ok {
		group = make(map[*Session]struct{})
		h.groups[hospitalID] = group
	}
	group[s] = struct{}{}
	return nil
}

// Leave removes the session from the hospital's group. It is a no-op if
// the session already left, so duplicate or late disconnect events are
// harmless.
func (h *Hub) Leave(hospitalID uint, s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.groups[hospitalID]
	if !ok {
		return
	}
	delete(group, s)
	if len(group) == 0 {
		delete(h.groups, hospitalID)
	}
}

// Publish delivers payload to every session currently in the hospital's
// group. Delivery to each session is independent: a session whose send
// buffer is full is dropped from the group instead of blocking its
// siblings. Publishing to an empty group is a no-op. Returns the number
// of sessions the payload was enqueued to.
func (h *Hub) Publish(hospitalID uint, payload []byte) int {
	h.mu.RLock()
	sessions := make([]*Session, 0, len(h.groups[hospitalID]))
	for s := range h.groups[hospitalID] {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, s := range sessions {
		if s.enqueue(payload) {
			delivered++
			continue
		}
		// Slow or already-closing session. At-most-once delivery: drop
		// the session, never retry, never block the rest of the group.
		s.close()
		log.Printf("notification: dropped unresponsive session for hospital %d", hospitalID)
	}
	return delivered
}

// GroupSize returns the number of sessions currently subscribed to the
// hospital's group.
func (h *Hub) GroupSize(hospitalID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups[hospitalID])
}
