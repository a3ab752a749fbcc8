package events

import (
	"sync"

	"go.uber.org/zap"
)

// Observer is one connected viewer. Deliver must not block indefinitely;
// implementations are expected to fail fast (bounded buffer, closed state)
// rather than stall a broadcast.
type Observer interface {
	Deliver(Event) error
}

// Broadcaster owns the set of live observers and fans out appointment
// lifecycle events to all of them. It is the only shared mutable state in the
// core; the registry is never exposed directly.
type Broadcaster struct {
	mu        sync.Mutex
	observers map[Observer]struct{}
	logger    *zap.Logger
}

// NewBroadcaster creates an empty registry.
func NewBroadcaster(logger *zap.Logger) *Broadcaster {
	return &Broadcaster{
		observers: make(map[Observer]struct{}),
		logger:    logger,
	}
}

// Register adds an observer after its connection handshake completed.
func (b *Broadcaster) Register(obs Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers[obs] = struct{}{}
}

// Unregister removes an observer. Removing an absent observer is a no-op.
func (b *Broadcaster) Unregister(obs Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.observers, obs)
}

// Broadcast delivers the event to every currently registered observer.
// Delivery runs against a snapshot taken under the lock, so a slow fan-out
// never blocks registration; observers connecting mid-broadcast may miss the
// in-flight event. Observers whose delivery fails are unregistered after the
// full pass. Failures never propagate to the caller: by the time Broadcast
// runs, the triggering mutation has already committed.
func (b *Broadcaster) Broadcast(event Event) {
	b.mu.Lock()
	snapshot := make([]Observer, 0, len(b.observers))
	for obs := range b.observers {
		snapshot = append(snapshot, obs)
	}
	b.mu.Unlock()

	var failed []Observer
	for _, obs := range snapshot {
		if err := obs.Deliver(event); err != nil {
			failed = append(failed, obs)
		}
	}

	for _, obs := range failed {
		b.Unregister(obs)
	}
	if len(failed) > 0 && b.logger != nil {
		b.logger.Debug("dropped unreachable observers",
			zap.Int("count", len(failed)),
			zap.String("event_type", string(event.Type)))
	}
}

// ObserverCount reports the current registry size.
func (b *Broadcaster) ObserverCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.observers)
}
