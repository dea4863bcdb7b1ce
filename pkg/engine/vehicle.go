package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"chilldrive/internal/util"
	"chilldrive/pkg/config"
	"chilldrive/pkg/road"
)

// CarState is the vehicle's physical state at one instant. The per-frame
// update is a pure function over it: StepCar takes the current state and
// returns the next one, no mutable context captured anywhere.
type CarState struct {
	Position     mgl64.Vec3
	Heading      float64 // Radians around the vertical axis, 0 faces +Z
	Speed        float64 // Units per second along the heading
	Pitch        float64 // Nose-up rotation from terrain slope
	Roll         float64 // Right-side-down rotation from terrain slope
	GroundHeight float64 // Terrain elevation under the body center
}

// InputState is one frame of driver input, each channel in [0,1] except
// Steer in [-1,1] (negative steers left).
type InputState struct {
	Throttle float64
	Brake    float64
	Steer    float64
}

// NewCarState places a car at a world position resting on the ground.
func NewCarState(cfg config.VehicleConfig, ground road.HeightSampler, x, z float64) CarState {
	h := ground.HeightAt(x, z)
	return CarState{
		Position:     mgl64.Vec3{x, h + cfg.RideHeight, z},
		GroundHeight: h,
	}
}

// Forward returns the unit direction the car is facing.
func (s CarState) Forward() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(s.Heading), 0, math.Cos(s.Heading)}
}

// Right returns the unit direction out of the car's right side.
func (s CarState) Right() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(s.Heading), 0, -math.Sin(s.Heading)}
}

// StepCar advances the car state by dt seconds of driving. Longitudinal
// motion integrates throttle, brake and drag; the vertical axis follows the
// terrain through a suspension that approaches the target ride height
// exponentially, and pitch/roll tilt the body to the slope sampled at the
// wheelbase and track offsets.
func StepCar(cfg config.VehicleConfig, ground road.HeightSampler, state CarState, in InputState, dt float64) CarState {
	next := state

	throttle := util.Clamp(in.Throttle, 0, 1)
	brake := util.Clamp(in.Brake, 0, 1)
	steer := util.Clamp(in.Steer, -1, 1)

	// Longitudinal dynamics
	next.Speed += (throttle*cfg.Acceleration - brake*cfg.BrakeDecel) * dt
	next.Speed -= next.Speed * cfg.Drag * dt
	next.Speed = util.Clamp(next.Speed, 0, cfg.MaxSpeed)

	// Steering authority scales with speed; a parked car does not turn
	if cfg.MaxSpeed > 0 {
		next.Heading += steer * cfg.SteerRate * (next.Speed / cfg.MaxSpeed) * dt
	}

	forward := next.Forward()
	next.Position = next.Position.Add(forward.Mul(next.Speed * dt))

	// Terrain following with suspension smoothing
	next.GroundHeight = ground.HeightAt(next.Position.X(), next.Position.Z())
	target := next.GroundHeight + cfg.RideHeight
	blend := util.Clamp(cfg.SuspensionRate*dt, 0, 1)
	next.Position[1] += (target - next.Position.Y()) * blend

	// Body tilt from slope under the wheels
	right := next.Right()
	halfBase := cfg.Wheelbase / 2
	halfTrack := cfg.Track / 2

	frontPos := next.Position.Add(forward.Mul(halfBase))
	rearPos := next.Position.Sub(forward.Mul(halfBase))
	rightPos := next.Position.Add(right.Mul(halfTrack))
	leftPos := next.Position.Sub(right.Mul(halfTrack))

	hFront := ground.HeightAt(frontPos.X(), frontPos.Z())
	hRear := ground.HeightAt(rearPos.X(), rearPos.Z())
	hRight := ground.HeightAt(rightPos.X(), rightPos.Z())
	hLeft := ground.HeightAt(leftPos.X(), leftPos.Z())

	targetPitch := math.Atan2(hFront-hRear, cfg.Wheelbase)
	targetRoll := math.Atan2(hRight-hLeft, cfg.Track)
	next.Pitch += (targetPitch - next.Pitch) * blend
	next.Roll += (targetRoll - next.Roll) * blend

	return next
}
