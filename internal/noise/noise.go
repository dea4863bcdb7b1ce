package noise

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters tuned for terrain-like noise.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Sampler yields coherent noise in [-1, 1] at a 2D position. Implementations
// must be pure: identical inputs always produce identical outputs.
type Sampler interface {
	Sample(x, y float64) float64
}

// Func adapts a plain function to the Sampler interface.
type Func func(x, y float64) float64

// Sample implements Sampler.
func (f Func) Sample(x, y float64) float64 { return f(x, y) }

// Generator produces seeded gradient noise and random values for procedural
// generation.
type Generator struct {
	perlin *perlin.Perlin
	rng    *rand.Rand
	seed   int64
}

// NewGenerator creates a new noise generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		perlin: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sample returns 2D gradient noise at (x, y), clamped to [-1, 1].
func (g *Generator) Sample(x, y float64) float64 {
	return clamp(g.perlin.Noise2D(x, y), -1, 1)
}

// Sample1D returns 1D gradient noise at x, clamped to [-1, 1].
func (g *Generator) Sample1D(x float64) float64 {
	return clamp(g.perlin.Noise1D(x), -1, 1)
}

// FBM2D generates 2D fractal Brownian motion noise by layering octaves of
// gradient noise. The result is normalized back to [-1, 1].
func (g *Generator) FBM2D(x, y float64, octaves int, lacunarity, gain float64) float64 {
	result := 0.0
	amplitude := 1.0
	frequency := 1.0
	max := 0.0

	for i := 0; i < octaves; i++ {
		result += g.Sample(x*frequency, y*frequency) * amplitude
		max += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}

	return result / max
}

// Ridge2D generates 2D ridge noise (useful for terrain ridges and valleys).
func (g *Generator) Ridge2D(x, y float64) float64 {
	n := math.Abs(g.Sample(x, y))
	n = 1.0 - n
	return n * n
}

// RandomFloat returns a random float in range [0.0, 1.0).
func (g *Generator) RandomFloat() float64 {
	return g.rng.Float64()
}

// RandomRange returns a random float in range [min, max).
func (g *Generator) RandomRange(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// RandomAngle returns a random angle in range [0, 2π).
func (g *Generator) RandomAngle() float64 {
	return g.rng.Float64() * 2 * math.Pi
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
