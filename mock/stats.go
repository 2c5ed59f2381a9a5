package mock

import (
	"sync"
	"sync/atomic"

	"github.com/shopcrawl/shopcrawl"
)

var _ shopcrawl.Stats = (*Stats)(nil)

// Stats is an in-memory implementation of shopcrawl.Stats for tests.
// Counters are atomic and safe for concurrent increments.
type Stats struct {
	mu       sync.Mutex
	counters map[string]*atomic.Int64
}

// Inc increments the named counter by one.
func (s *Stats) Inc(name string) {
	s.counter(name).Add(1)
}

// Count returns the current value of the named counter.
func (s *Stats) Count(name string) int64 {
	return s.counter(name).Load()
}

func (s *Stats) counter(name string) *atomic.Int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counters == nil {
		s.counters = make(map[string]*atomic.Int64)
	}
	c, ok := s.counters[name]
	if !ok {
		c = &atomic.Int64{}
		s.counters[name] = c
	}
	return c
}
