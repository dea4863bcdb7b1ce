package terrain

import "chilldrive/internal/noise"

// Direct sampler octave layering: frequency doubles and amplitude halves per
// octave.
const (
	directOctaves = 4
	directLacuna  = 2.0
	directGain    = 0.5
)

// DirectSampler evaluates layered coherent noise at the query point instead
// of interpolating a precomputed grid. It has no extent limitation, which
// makes it the sampler of choice for live car-position queries along the
// unbounded road. Elevations below the water level are clamped up to it,
// so lakes and rivers read as flat surfaces; a dry season disables the
// clamp and drains them.
type DirectSampler struct {
	src        noise.Sampler
	baseFreq   float64
	amplitude  float64
	waterLevel float64
	clampWater bool
}

// NewDirectSampler creates a direct heightfield sampler.
func NewDirectSampler(src noise.Sampler, baseFreq, amplitude, waterLevel float64, clampWater bool) *DirectSampler {
	return &DirectSampler{
		src:        src,
		baseFreq:   baseFreq,
		amplitude:  amplitude,
		waterLevel: waterLevel,
		clampWater: clampWater,
	}
}

// HeightAt returns the terrain elevation at a world position.
func (d *DirectSampler) HeightAt(x, z float64) float64 {
	h := 0.0
	amplitude := 1.0
	frequency := d.baseFreq

	for i := 0; i < directOctaves; i++ {
		h += d.src.Sample(x*frequency, z*frequency) * amplitude
		amplitude *= directGain
		frequency *= directLacuna
	}

	h *= d.amplitude

	if d.clampWater && h < d.waterLevel {
		h = d.waterLevel
	}

	return h
}

// WaterLevel returns the elevation floor used for water areas.
func (d *DirectSampler) WaterLevel() float64 {
	return d.waterLevel
}
