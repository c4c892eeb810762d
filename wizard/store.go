package wizard

import "sync"

// Store is the durable home of in-progress drafts, keyed by the
// participant's identity. Load returns nil when no draft exists.
type Store interface {
	Load(firebaseUID string) (*Draft, error)
	Save(firebaseUID string, draft *Draft) error
	Clear(firebaseUID string) error
}

// MemoryStore keeps drafts in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	drafts map[string]Draft
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]Draft)}
}

func (s *MemoryStore) Load(firebaseUID string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[firebaseUID]
	if !ok {
		return nil, nil
	}
	copied := draft
	return &copied, nil
}

func (s *MemoryStore) Save(firebaseUID string, draft *Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[firebaseUID] = *draft
	return nil
}

func (s *MemoryStore) Clear(firebaseUID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, firebaseUID)
	return nil
}
