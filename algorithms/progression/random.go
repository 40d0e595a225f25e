package progression

import (
	"math/rand/v2"
	"sync"
)

// RandomSource picks template indices for the generator
type RandomSource interface {
	// IntN returns a value in [0, n). n is always positive
	IntN(n int) int
}

// SeededSource is a deterministic RandomSource. The same seed always yields
// the same sequence of picks. Safe for concurrent use
type SeededSource struct {
	mu   sync.Mutex
	seed uint64
	rng  *rand.Rand
}

// NewSeededSource creates a deterministic source
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *SeededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Reset rewinds the source to its initial seed
func (s *SeededSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
}

// Seed returns the seed the source was created with
func (s *SeededSource) Seed() uint64 {
	return s.seed
}

// LiveSource draws from the process-wide random generator
type LiveSource struct{}

// NewLiveSource creates a non-reproducible source
func NewLiveSource() LiveSource {
	return LiveSource{}
}

func (LiveSource) IntN(n int) int {
	return rand.IntN(n)
}
