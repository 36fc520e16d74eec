package notification

import (
	"encoding/json"
	"log"
)

// Publisher is the service-facing write side of the hub. Business
// handlers call it after their database transaction has committed; it
// never reports delivery failures back, because a failed or skipped
// delivery must not affect already-committed business state.
type Publisher struct {
	hub *Hub
}

func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub}
}

// Publish fans the event out to the hospital's currently-connected
// sessions. If nobody is connected the event is dropped; this is a live
// notification path, not a durable queue.
func (p *Publisher) Publish(hospitalID uint, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("notification: failed to encode %T for hospital %d: %v", event, hospitalID, err)
		return
	}

	if n := p.hub.Publish(hospitalID, payload); n > 0 {
		log.Printf("notification: delivered %T to %d session(s) of hospital %d", event, n, hospitalID)
	}
}
