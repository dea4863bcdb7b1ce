package engine

import (
	"math"

	"chilldrive/internal/noise"
)

// InputSource produces one frame of driver input. The windowing/event layer
// supplies the real implementation; the demo binary ships an autopilot.
type InputSource interface {
	Next(dt float64) InputState
}

// Autopilot generates scripted driving input: steady throttle with a slow
// noise-driven steering wander, enough to exercise terrain following and
// road tiling without a keyboard.
type Autopilot struct {
	gen  *noise.Generator
	time float64
}

// NewAutopilot creates an autopilot seeded for reproducible drives.
func NewAutopilot(gen *noise.Generator) *Autopilot {
	return &Autopilot{gen: gen}
}

// Next returns the next frame of input.
func (a *Autopilot) Next(dt float64) InputState {
	a.time += dt

	steer := a.gen.Sample1D(a.time*0.1) * 0.3

	// Ease off the throttle in tighter steering
	throttle := 0.8 - math.Abs(steer)*0.5

	return InputState{
		Throttle: throttle,
		Steer:    steer,
	}
}
