package metrics

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the randomness behind chart shapes.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// lockedSource makes a *rand.Rand safe for concurrent handlers.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource returns a reproducible Source.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSource returns a time-seeded Source.
func NewSource() Source {
	return NewSeededSource(uint64(time.Now().UnixNano()))
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Shuffle(n, swap)
}
