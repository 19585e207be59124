package board

import "math/rand"

// Random picks a uniform index in [0, n). *rand.Rand satisfies it, which is
// what seeded boards use.
type Random interface {
	Intn(n int) int
}

// ProcessRandom draws from the process-wide math/rand generator.
type ProcessRandom struct{}

// Intn implements Random.
func (ProcessRandom) Intn(n int) int {
	return rand.Intn(n)
}

// NewSeededRandom returns a deterministic Random for the given seed.
func NewSeededRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

var (
	_ Random = (*rand.Rand)(nil)
	_ Random = ProcessRandom{}
)
