package terrain

import (
	"fmt"
	"math"

	"chilldrive/internal/noise"
)

// Noise octave layering for grid generation. Each octave samples at a
// quarter of the previous frequency with four times the amplitude, and the
// abs() folds zero-crossings into creases, which gives the terrain its
// ridged, valley-like look.
const (
	gridOctaves        = 4
	gridOctaveStep     = 4.0
	gridInitialQuality = 1.0
)

// Sampler yields terrain elevation at a world position. Implementations are
// total functions: out-of-range queries degrade to a defined fallback value,
// never an error.
type Sampler interface {
	HeightAt(x, z float64) float64
}

// Material classifies a terrain cell by elevation
type Material int

// Materials
const (
	MaterialWater Material = iota
	MaterialGrass
	MaterialRock
	MaterialSnow
)

// Grid is a precomputed heightfield: a square grid of normalized elevation
// samples paired with the world-space extent it covers. Immutable once built.
type Grid struct {
	Resolution int       // Samples per side
	Data       []float64 // Row-major normalized elevations in [0,1]
	Extent     float64   // World-space width/depth, centered on the origin
	MaxHeight  float64   // Elevation multiplier applied on lookup
}

// GenerateGrid builds a resolution×resolution grid of normalized elevation
// values in [0,1] from layered coherent noise. The result is min-max
// normalized, so the lowest sample is exactly 0 and the highest exactly 1.
func GenerateGrid(resolution int, src noise.Sampler) ([]float64, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("grid resolution must be at least 1, got %d", resolution)
	}

	data := make([]float64, resolution*resolution)

	quality := gridInitialQuality
	for octave := 0; octave < gridOctaves; octave++ {
		for i := range data {
			x := float64(i % resolution)
			z := float64(i / resolution)
			data[i] += math.Abs(src.Sample(x/quality, z/quality)) * quality
		}
		quality *= gridOctaveStep
	}

	// Min-max normalize to [0,1]
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max > min {
		for i, v := range data {
			data[i] = (v - min) / (max - min)
		}
	}

	return data, nil
}

// NewGrid generates a grid-backed heightfield covering a square world-space
// extent centered on the origin.
func NewGrid(resolution int, extent, maxHeight float64, src noise.Sampler) (*Grid, error) {
	if extent <= 0 {
		return nil, fmt.Errorf("grid extent must be positive, got %v", extent)
	}

	data, err := GenerateGrid(resolution, src)
	if err != nil {
		return nil, err
	}

	return &Grid{
		Resolution: resolution,
		Data:       data,
		Extent:     extent,
		MaxHeight:  maxHeight,
	}, nil
}

// HeightAt returns the terrain elevation at a world position by bilinearly
// interpolating the four enclosing grid samples. Positions outside the grid
// extent return 0.
func (g *Grid) HeightAt(x, z float64) float64 {
	// Map world coordinates into grid-fraction space
	fx := x/g.Extent + 0.5
	fz := z/g.Extent + 0.5
	if fx < 0 || fx > 1 || fz < 0 || fz > 1 {
		return 0
	}

	if g.Resolution == 1 {
		return g.Data[0] * g.MaxHeight
	}

	// Locate the enclosing cell
	gx := fx * float64(g.Resolution-1)
	gz := fz * float64(g.Resolution-1)
	ix := int(gx)
	iz := int(gz)
	if ix > g.Resolution-2 {
		ix = g.Resolution - 2
	}
	if iz > g.Resolution-2 {
		iz = g.Resolution - 2
	}
	tx := gx - float64(ix)
	tz := gz - float64(iz)

	// Bilinear interpolation of the four corners
	h00 := g.Data[iz*g.Resolution+ix]
	h10 := g.Data[iz*g.Resolution+ix+1]
	h01 := g.Data[(iz+1)*g.Resolution+ix]
	h11 := g.Data[(iz+1)*g.Resolution+ix+1]

	h0 := h00 + (h10-h00)*tx
	h1 := h01 + (h11-h01)*tx

	return (h0 + (h1-h0)*tz) * g.MaxHeight
}

// NormalizedAt returns the raw normalized elevation at grid indices, clamped
// to the grid bounds.
func (g *Grid) NormalizedAt(ix, iz int) float64 {
	if ix < 0 {
		ix = 0
	}
	if iz < 0 {
		iz = 0
	}
	if ix >= g.Resolution {
		ix = g.Resolution - 1
	}
	if iz >= g.Resolution {
		iz = g.Resolution - 1
	}
	return g.Data[iz*g.Resolution+ix]
}

// MaterialAt classifies the terrain at a world position by elevation
func (g *Grid) MaterialAt(x, z float64) Material {
	elevation := 0.0
	if g.MaxHeight != 0 {
		elevation = g.HeightAt(x, z) / g.MaxHeight
	}

	switch {
	case elevation < 0.15:
		return MaterialWater
	case elevation < 0.55:
		return MaterialGrass
	case elevation < 0.8:
		return MaterialRock
	default:
		return MaterialSnow
	}
}
