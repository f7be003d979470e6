// Package events fans layout state changes out to streaming clients.
package events

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

const subscriberBufSize = 64

// EventState is the name of the event carrying a full layout state snapshot.
const EventState = "state"

// Event is a single change notification sent over SSE.
type Event struct {
	ID      int64
	Name    string
	Payload string
}

// Broker fans out events to all subscribed clients.
type Broker struct {
	log *slog.Logger

	mu          sync.RWMutex
	subscribers map[int64]chan Event
	nextID      atomic.Int64
	nextEvent   atomic.Int64
}

func NewBroker(log *slog.Logger) *Broker {
	return &Broker{
		log:         log,
		subscribers: make(map[int64]chan Event),
	}
}

// Subscribe registers a client and returns its id and event channel. The channel
// is buffered; events are dropped for clients that fall behind.
func (b *Broker) Subscribe() (int64, <-chan Event) {
	id := b.nextID.Add(1)
	ch := make(chan Event, subscriberBufSize)
	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()
	return id, ch
}

// Unsubscribe removes a client and closes its channel.
func (b *Broker) Unsubscribe(id int64) {
	b.mu.Lock()
	ch, ok := b.subscribers[id]
	if ok {
		delete(b.subscribers, id)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish sends an event to every client without blocking.
func (b *Broker) Publish(name, payload string) {
	evt := Event{ID: b.nextEvent.Add(1), Name: name, Payload: payload}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subscribers {
		select {
		case ch <- evt:
		default:
			b.log.Warn("dropping event for slow client", "subscriber", id, "event", name)
		}
	}
}

// PublishState is a layout service subscriber that broadcasts each new state.
func (b *Broker) PublishState(st models.LayoutState) {
	data, err := json.Marshal(st)
	if err != nil {
		b.log.Error("failed to encode layout state event", "error", err)
		return
	}
	b.Publish(EventState, string(data))
}

// ClientCount returns the number of connected clients.
func (b *Broker) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
