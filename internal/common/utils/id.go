// Package utils provides identifier generation plus small string and duration helpers.
//
// Pipeline identifiers are ULIDs drawn from a monotonic entropy source, so
// identifiers created within the same millisecond still sort in creation
// order and never repeat within a process.
package utils

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDGenerator returns a fresh identifier on every call
type IDGenerator func() string

// NewULIDGenerator returns a generator of monotonic, clock-derived ULID strings.
//
// The clock is injectable for tests; nil means time.Now. The returned
// generator is safe for concurrent use.
func NewULIDGenerator(clock func() time.Time) IDGenerator {
	if clock == nil {
		clock = time.Now
	}

	var mu sync.Mutex
	entropy := ulid.Monotonic(rand.Reader, 0)

	return func() string {
		mu.Lock()
		defer mu.Unlock()
		return ulid.MustNew(ulid.Timestamp(clock()), entropy).String()
	}
}

// Sequence hands out increasing integers starting after a seed value.
//
// Saved queries use small integer ids, and seeded fixtures occupy the first
// few, so the sequence is seeded past them.
type Sequence struct {
	mu   sync.Mutex
	last int
}

// NewSequence creates a sequence whose first Next returns start+1
func NewSequence(start int) *Sequence {
	return &Sequence{last: start}
}

// Next returns the next integer
func (s *Sequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

// Observe moves the sequence forward so it never returns v or anything below it
func (s *Sequence) Observe(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v > s.last {
		s.last = v
	}
}
