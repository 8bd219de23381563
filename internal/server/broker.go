package server

import (
	"sync"
)

// Event is pushed to subscribers of a quiz session.
type Event struct {
	Type           string `json:"type"`
	Remaining      int    `json:"remaining,omitempty"`
	RemainingLabel string `json:"remainingLabel,omitempty"`
	Score          int    `json:"score"`
	Passed         bool   `json:"passed"`
}

const (
	eventTick     = "tick"
	eventRevealed = "revealed"
	eventClosed   = "closed"
)

// Broker is an in-process pub/sub for SSE events, keyed by session ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe returns a channel that receives events for the given session.
func (b *Broker) Subscribe(sessionID string) chan Event {
	ch := make(chan Event, 16)
	b.mu.Lock()
	if b.subs[sessionID] == nil {
		b.subs[sessionID] = make(map[chan Event]struct{})
	}
	b.subs[sessionID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(sessionID string, ch chan Event) {
	b.mu.Lock()
	delete(b.subs[sessionID], ch)
	if len(b.subs[sessionID]) == 0 {
		delete(b.subs, sessionID)
	}
	b.mu.Unlock()
}

// Publish never blocks; a subscriber whose buffer is full misses the event.
func (b *Broker) Publish(sessionID string, event Event) {
	b.mu.RLock()
	for ch := range b.subs[sessionID] {
		select {
		case ch <- event:
		default:
		}
	}
	b.mu.RUnlock()
}
