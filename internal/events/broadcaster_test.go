package events

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type recordingObserver struct {
	mu       sync.Mutex
	received []Event
	err      error
}

func (o *recordingObserver) Deliver(ev Event) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.received = append(o.received, ev)
	return nil
}

func (o *recordingObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.received)
}

func TestBroadcasterFanOut(t *testing.T) {
	b := NewBroadcaster(nil)
	first := &recordingObserver{}
	second := &recordingObserver{}
	b.Register(first)
	b.Register(second)

	ev := NewAppointmentEvent(EventAppointmentCreated, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), 7)
	b.Broadcast(ev)

	for i, obs := range []*recordingObserver{first, second} {
		if obs.count() != 1 {
			t.Fatalf("observer %d received %d events, want 1", i, obs.count())
		}
	}
	if got := first.received[0]; got.Type != EventAppointmentCreated || got.Date != "2024-03-15" || got.Branch != BranchAll || got.AppointmentID != 7 {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestBroadcasterDropsFailedObserver(t *testing.T) {
	b := NewBroadcaster(nil)
	healthy := &recordingObserver{}
	broken := &recordingObserver{err: errors.New("gone")}
	b.Register(healthy)
	b.Register(broken)

	b.Broadcast(Event{Type: EventAppointmentDeleted, Branch: BranchAll})

	if healthy.count() != 1 {
		t.Fatalf("healthy observer received %d events, want 1", healthy.count())
	}
	if b.ObserverCount() != 1 {
		t.Fatalf("registry size = %d, want 1 after dropping the failed observer", b.ObserverCount())
	}

	// The broken observer is gone; only the healthy one hears the next event.
	b.Broadcast(Event{Type: EventAppointmentCompleted, Branch: BranchAll})
	if healthy.count() != 2 {
		t.Fatalf("healthy observer received %d events, want 2", healthy.count())
	}
}

func TestBroadcasterUnregisterAbsentObserver(t *testing.T) {
	b := NewBroadcaster(nil)
	obs := &recordingObserver{}

	b.Unregister(obs) // must not panic

	b.Register(obs)
	b.Unregister(obs)
	b.Unregister(obs)
	if b.ObserverCount() != 0 {
		t.Fatalf("registry size = %d, want 0", b.ObserverCount())
	}
}

func TestBroadcasterConcurrentRegistration(t *testing.T) {
	b := NewBroadcaster(nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			obs := &recordingObserver{}
			b.Register(obs)
			b.Unregister(obs)
		}()
		go func() {
			defer wg.Done()
			b.Broadcast(Event{Type: EventAppointmentCreated, Branch: BranchAll})
		}()
	}
	wg.Wait()

	if b.ObserverCount() != 0 {
		t.Fatalf("registry size = %d, want 0", b.ObserverCount())
	}
}
