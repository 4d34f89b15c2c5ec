package idgen

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
)

var _ ports.IDGenerator = (*Seeded)(nil)

// Seeded derives identifiers from a seed, the hint and a call counter.
// Two generators with the same seed produce the same sequence.
type Seeded struct {
	mu      sync.Mutex
	seed    string
	counter uint64
}

// NewSeeded creates a new Seeded generator.
func NewSeeded(seed string) *Seeded {
	return &Seeded{seed: seed}
}

// NewID returns the next identifier in the sequence.
func (s *Seeded) NewID(hint string) domain.ObjectID {
	s.mu.Lock()
	s.counter++
	n := s.counter
	s.mu.Unlock()

	hi := xxhash.New()
	_, _ = hi.WriteString(s.seed)
	_, _ = hi.Write([]byte{0})
	_, _ = hi.WriteString(hint)
	_, _ = hi.Write([]byte{0})
	_, _ = fmt.Fprintf(hi, "%d", n)

	lo := xxhash.Sum64String(fmt.Sprintf("%s/%d", hint, n))
	return domain.ObjectID(fmt.Sprintf("%016X%08X", hi.Sum64(), uint32(lo))) //nolint:gosec // Truncation is intended
}
