package road

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidInput reports malformed geometry parameters: too few control
// points, non-positive segment counts or widths. Callers detect it with
// errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// HeightSampler yields terrain elevation at a world position. Satisfied by
// the terrain package samplers.
type HeightSampler interface {
	HeightAt(x, z float64) float64
}

// Spline is a Catmull-Rom curve interpolating an ordered sequence of 3D
// waypoints. The curve passes through every control point with continuous
// tangents. Immutable once built.
type Spline struct {
	points []mgl64.Vec3
}

// NewSpline builds a spline through the given control points.
func NewSpline(points []mgl64.Vec3) (*Spline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("spline needs at least 2 control points, got %d: %w", len(points), ErrInvalidInput)
	}

	owned := make([]mgl64.Vec3, len(points))
	copy(owned, points)

	return &Spline{points: owned}, nil
}

// ControlPoints returns the waypoints the spline interpolates.
func (s *Spline) ControlPoints() []mgl64.Vec3 {
	return s.points
}

// segment locates the curve segment and local parameter for a global t in
// [0,1]. Endpoint tangents use mirrored phantom points, so a two-point
// spline degenerates to the straight line between them.
func (s *Spline) segment(t float64) (p0, p1, p2, p3 mgl64.Vec3, u float64) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	n := len(s.points)
	scaled := t * float64(n-1)
	seg := int(scaled)
	if seg > n-2 {
		seg = n - 2
	}
	u = scaled - float64(seg)

	p1 = s.points[seg]
	p2 = s.points[seg+1]

	if seg > 0 {
		p0 = s.points[seg-1]
	} else {
		p0 = p1.Mul(2).Sub(p2)
	}
	if seg < n-2 {
		p3 = s.points[seg+2]
	} else {
		p3 = p2.Mul(2).Sub(p1)
	}

	return
}

// Point evaluates the curve position at parameter t in [0,1].
func (s *Spline) Point(t float64) mgl64.Vec3 {
	p0, p1, p2, p3, u := s.segment(t)

	u2 := u * u
	u3 := u2 * u

	// Catmull-Rom basis
	a := p1.Mul(2)
	b := p2.Sub(p0)
	c := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3)
	d := p1.Mul(3).Sub(p0).Sub(p2.Mul(3)).Add(p3)

	return a.Add(b.Mul(u)).Add(c.Mul(u2)).Add(d.Mul(u3)).Mul(0.5)
}

// Tangent evaluates the normalized curve tangent at parameter t in [0,1].
func (s *Spline) Tangent(t float64) mgl64.Vec3 {
	p0, p1, p2, p3, u := s.segment(t)

	u2 := u * u

	// Derivative of the Catmull-Rom basis
	b := p2.Sub(p0)
	c := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3)
	d := p1.Mul(3).Sub(p0).Sub(p2.Mul(3)).Add(p3)

	tangent := b.Add(c.Mul(2 * u)).Add(d.Mul(3 * u2)).Mul(0.5)
	if tangent.Len() == 0 {
		// Coincident control points; fall back to the chord direction
		chord := s.points[len(s.points)-1].Sub(s.points[0])
		if chord.Len() == 0 {
			return mgl64.Vec3{0, 0, 1}
		}
		return chord.Normalize()
	}

	return tangent.Normalize()
}

// Length approximates the curve arc length by sampling fixed steps.
func (s *Spline) Length() float64 {
	const steps = 64

	length := 0.0
	prev := s.Point(0)
	for i := 1; i <= steps; i++ {
		p := s.Point(float64(i) / steps)
		length += p.Sub(prev).Len()
		prev = p
	}

	return length
}
