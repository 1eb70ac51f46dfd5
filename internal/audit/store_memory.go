package audit

import (
	"context"
	"sync"

	"caredocs/pkg/domain"
)

// InMemoryStore keeps the trail in process memory, ordered by append.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[domain.ClientID][]Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[domain.ClientID][]Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ClientID] = append(s.events[event.ClientID], event)
	return nil
}

func (s *InMemoryStore) ListByClient(_ context.Context, clientID domain.ClientID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events[clientID]...), nil
}
