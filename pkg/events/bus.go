package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// defaultBufferSize is the per-subscriber channel depth. A subscriber that
// falls this far behind starts losing events.
const defaultBufferSize = 64

// Bus is an in-process fan-out for event envelopes. Publishing never
// blocks: a subscriber whose buffer is full misses the event and its drop
// counter is incremented. Consumers needing a complete history must read
// the session_events table instead.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*Subscription
	logger *slog.Logger
}

// Subscription is a single subscriber's view of the bus. Read envelopes
// from C until it is closed by Unsubscribe.
type Subscription struct {
	// C delivers envelopes. Closed when the subscription is removed.
	C <-chan Envelope

	id       int
	ch       chan Envelope
	channels map[string]bool // nil means all channels
	dropped  atomic.Int64
}

// Dropped returns how many events this subscriber has missed.
func (s *Subscription) Dropped() int64 {
	return s.dropped.Load()
}

// NewBus creates an event bus.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[int]*Subscription),
		logger: logger,
	}
}

// Subscribe registers a subscriber for the given channels. With no
// channels, the subscriber receives every event.
func (b *Bus) Subscribe(channels ...string) *Subscription {
	return b.SubscribeBuffered(defaultBufferSize, channels...)
}

// SubscribeBuffered registers a subscriber with an explicit buffer depth.
func (b *Bus) SubscribeBuffered(buffer int, channels ...string) *Subscription {
	if buffer <= 0 {
		buffer = defaultBufferSize
	}

	ch := make(chan Envelope, buffer)
	sub := &Subscription{C: ch, ch: ch}
	if len(channels) > 0 {
		sub.channels = make(map[string]bool, len(channels))
		for _, c := range channels {
			sub.channels[c] = true
		}
	}

	b.mu.Lock()
	b.nextID++
	sub.id = b.nextID
	b.subs[sub.id] = sub
	b.mu.Unlock()

	return sub
}

// Unsubscribe removes a subscription and closes its channel. Safe to call
// more than once.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	_, exists := b.subs[sub.id]
	delete(b.subs, sub.id)
	b.mu.Unlock()

	if exists {
		close(sub.ch)
	}
}

// Publish fans an envelope out to every subscriber of the channel. Slow
// subscribers are skipped rather than blocking the publisher.
func (b *Bus) Publish(channel string, env Envelope) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if sub.channels != nil && !sub.channels[channel] {
			continue
		}
		select {
		case sub.ch <- env:
		default:
			n := sub.dropped.Add(1)
			if n == 1 || n%100 == 0 {
				b.logger.Warn("Slow event subscriber dropping events",
					"subscriber_id", sub.id,
					"channel", channel,
					"dropped_total", n)
			}
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
