package idgen

import (
	"fmt"
	"sync"
)

// Sequence hands out process-unique identifiers of the form "ID<n>" from a
// monotonically increasing counter. It is safe for concurrent use. Uniqueness
// holds for the lifetime of the process only; there is no persistence.
type Sequence struct {
	mu   sync.Mutex
	next int64
}

// NewSequence creates a Sequence starting at base.
func NewSequence(base int64) *Sequence {
	return &Sequence{next: base}
}

// Next returns the next identifier in the sequence.
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("ID%d", s.next)
	s.next++
	return id
}
