package events

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for one or more event types
func (b *Bus) Subscribe(listener EventListener, eventTypes ...EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, eventType := range eventTypes {
		b.listeners[eventType] = append(b.listeners[eventType], listener)
		b.sortLocked(eventType)

		log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
			listener.ID(), eventType, listener.Priority())
	}
}

// Unsubscribe removes a listener from every event type it was registered for
func (b *Bus) Unsubscribe(listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for eventType, listeners := range b.listeners {
		kept := listeners[:0]
		for _, l := range listeners {
			if l.ID() != listenerID {
				kept = append(kept, l)
			}
		}
		if len(kept) != len(listeners) {
			log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
		}
		b.listeners[eventType] = kept
	}
}

// ListenerCount returns how many listeners receive eventType
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// Emit sends an event to all registered listeners in priority order. A
// cancelled event stops propagating.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s cancelled, stopping propagation", event.GetType())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
}

func (b *Bus) sortLocked(eventType EventType) {
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})
}
