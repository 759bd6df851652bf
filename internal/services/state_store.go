package services

import (
	"slices"
	"sync"

	"github.com/renato0307/shed/internal/domain"
)

// StateListener is notified with the committed state after every dispatch
type StateListener func(state domain.AppState)

type stateSubscription struct {
	id       int
	listener StateListener
}

// StateStore holds the AppState and applies commands through domain.Reduce
type StateStore struct {
	listeners []stateSubscription
	mu        sync.Mutex
	nextID    int
	state     domain.AppState
}

// NewStateStore creates a store holding the pre-load state
func NewStateStore() *StateStore {
	return &StateStore{state: domain.NewAppState()}
}

// State returns the current committed state
func (s *StateStore) State() domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch commits cmd, then notifies listeners in registration order
func (s *StateStore) Dispatch(cmd domain.Command) domain.AppState {
	s.mu.Lock()
	s.state = domain.Reduce(s.state, cmd)
	state := s.state
	listeners := make([]StateListener, 0, len(s.listeners))
	for _, sub := range s.listeners {
		listeners = append(listeners, sub.listener)
	}
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(state)
	}
	return state
}

// Subscribe registers a listener and returns a function that removes it
func (s *StateStore) Subscribe(listener StateListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, stateSubscription{id: id, listener: listener})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(sub stateSubscription) bool { return sub.id == id })
	}
}
