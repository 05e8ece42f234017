package cache

import (
	"sync"
	"time"
)

// Slot holds one value for a fixed ttl. Concurrent refreshes are not
// coordinated; the last Store wins.
type Slot[V any] struct {
	mu       sync.RWMutex
	value    V
	storedAt time.Time
	filled   bool
	ttl      time.Duration
	now      func() time.Time
}

func NewSlot[V any](ttl time.Duration) *Slot[V] {
	return &Slot[V]{ttl: ttl, now: time.Now}
}

// Load returns the value while it is fresh.
func (s *Slot[V]) Load() (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero V
	if !s.filled {
		return zero, false
	}
	if s.ttl > 0 && s.now().Sub(s.storedAt) >= s.ttl {
		return zero, false
	}
	return s.value, true
}

func (s *Slot[V]) Store(value V) {
	s.mu.Lock()
	s.value = value
	s.storedAt = s.now()
	s.filled = true
	s.mu.Unlock()
}

func (s *Slot[V]) Clear() {
	s.mu.Lock()
	var zero V
	s.value = zero
	s.filled = false
	s.mu.Unlock()
}
