package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tensorward/manifold/internal/math64"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Vector returns a vector with coordinates uniform in [-1, 1).
func (r *RNG) Vector(dim int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, dim)
	for i := range out {
		out[i] = r.rand.Float64()*2 - 1
	}
	return out
}

// GaussianVector returns a vector with standard normal coordinates.
func (r *RNG) GaussianVector(dim int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, dim)
	for i := range out {
		out[i] = r.rand.NormFloat64()
	}
	return out
}

// UnitVector returns a uniformly distributed direction on the unit sphere
// in R^dim.
func (r *RNG) UnitVector(dim int) []float64 {
	for {
		out := r.GaussianVector(dim)
		n := math.Sqrt(math64.Dot(out, out))
		if n > 1e-6 {
			math64.ScaleInPlace(out, 1/n)
			return out
		}
	}
}

// TangentTo returns a random direction orthogonal to the unit vector p,
// suitable as a sphere tangent vector at p.
func (r *RNG) TangentTo(p []float64) []float64 {
	for {
		out := r.GaussianVector(len(p))
		math64.AddScaled(out, out, -math64.Dot(out, p), p)
		n := math.Sqrt(math64.Dot(out, out))
		if n > 1e-6 {
			math64.ScaleInPlace(out, 1/n)
			return out
		}
	}
}
