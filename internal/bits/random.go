package bits

import (
	"math/rand"
	"sync"
)

// RandomSource supplies the bits used to pad unused image capacity.
type RandomSource interface {
	RandomBit() bool
}

type globalRandomSource struct{}

// NewRandomSource returns a RandomSource backed by the auto seeded math/rand global generator.
func NewRandomSource() RandomSource {
	return globalRandomSource{}
}

func (globalRandomSource) RandomBit() bool {
	return rand.Intn(2) == 1
}

// SeededRandomSource produces a reproducible bit stream, handy to regenerate an identical output image.
type SeededRandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeededRandomSource(seed int64) *SeededRandomSource {
	return &SeededRandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *SeededRandomSource) RandomBit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(2) == 1
}

// ConstantSource always returns the same bit.
type ConstantSource bool

func (c ConstantSource) RandomBit() bool {
	return bool(c)
}
