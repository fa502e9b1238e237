package schedule

import (
	"sync"

	"github.com/minglu-edu/schedule-proxy/internal/dto"
)

// Store holds the full fetched course list. It is populated once at
// startup and only ever replaced wholesale; filtering and counting are
// derived from snapshots, never from partial updates.
type Store struct {
	mu      sync.RWMutex
	courses []dto.CourseRecord
	loaded  bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// ReplaceAll swaps in a new full list. This is the store's only mutation.
func (s *Store) ReplaceAll(courses []dto.CourseRecord) {
	copied := make([]dto.CourseRecord, len(courses))
	copy(copied, courses)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = copied
	s.loaded = true
}

// Snapshot returns a copy of the cached list.
func (s *Store) Snapshot() []dto.CourseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]dto.CourseRecord, len(s.courses))
	copy(copied, s.courses)
	return copied
}

// Len returns the cached list size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.courses)
}

// Loaded reports whether an initial fetch has populated the store.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
