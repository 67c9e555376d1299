package dashboard

import (
	"sync"

	"github.com/arlearn/admin-backend/internal/domain"
)

// SessionStore holds the session marker between page loads. Load reports
// whether a record is present; absence means anonymous.
type SessionStore interface {
	Load() (domain.SessionRecord, bool)
	Save(rec domain.SessionRecord)
	Clear()
}

// MemoryStore is a tab-scoped SessionStore: one slot, gone when the
// process goes.
type MemoryStore struct {
	mu  sync.Mutex
	rec domain.SessionRecord
	set bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (domain.SessionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec, s.set
}

func (s *MemoryStore) Save(rec domain.SessionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
	s.set = true
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = domain.SessionRecord{}
	s.set = false
}
