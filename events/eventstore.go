package events

import (
	"fmt"
	"sync"
)

// EventStore is the interface for storing and retrieving events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(gameID string) ([]Event, error)
}

// InMemoryEventStore is an in-memory implementation of the EventStore interface.
type InMemoryEventStore struct {
	events map[string][]Event
	order  []string
	mutex  sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	if event == nil {
		return fmt.Errorf("cannot append a nil event")
	}

	gameID := GetGameID(event)
	if gameID == "" {
		return fmt.Errorf("event %s has no gameID", event.EventName())
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.events[gameID]; !exists {
		s.events[gameID] = make([]Event, 0)
		s.order = append(s.order, gameID)
	}

	s.events[gameID] = append(s.events[gameID], event)
	return nil
}

// LoadEvents retrieves all events for the given gameID.
func (s *InMemoryEventStore) LoadEvents(gameID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if events, exists := s.events[gameID]; exists {
		// Make a copy to avoid potential race conditions
		result := make([]Event, len(events))
		copy(result, events)
		return result, nil
	}

	// Return empty slice if no events found
	return []Event{}, nil
}

// GameIDs returns the IDs of every game with stored events, oldest first.
func (s *InMemoryEventStore) GameIDs() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}
