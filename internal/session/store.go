package session

import (
	"errors"
	"sync"

	"cpu-scheduler-simulator/internal/idgen"
	"cpu-scheduler-simulator/internal/schedulers"
)

// ErrNotFound is returned when no session carries the requested id.
var ErrNotFound = errors.New("session: not found")

// Store keeps independent simulators keyed by session id. It is safe for
// concurrent use; each simulator serialises its own registry.
type Store struct {
	sessions map[string]*schedulers.Simulator
	options  schedulers.Options
	mux      sync.RWMutex
}

func New(options schedulers.Options) *Store {
	return &Store{sessions: map[string]*schedulers.Simulator{}, options: options}
}

func (s *Store) Create() string {
	id := idgen.New()
	s.mux.Lock()
	defer s.mux.Unlock()
	s.sessions[id] = schedulers.NewSimulator(s.options)
	return id
}

func (s *Store) Load(id string) (*schedulers.Simulator, error) {
	s.mux.RLock()
	simulator, ok := s.sessions[id]
	s.mux.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return simulator, nil
}

func (s *Store) Delete(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *Store) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.sessions)
}
