package road

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Markings sit slightly higher than the road surface so they never z-fight
// with the ribbon.
const markingClearance = Clearance + 0.05

// QuadPlacement positions one dash quad on the road: a world-space center
// and a heading (rotation around the vertical axis) aligned with the local
// curve tangent.
type QuadPlacement struct {
	Position mgl64.Vec3
	Heading  float64
}

// BuildDashedMarkings places up to count short quads along the curve at
// alternating on/off intervals of dashLength and dashGap, both expressed in
// curve parameter units. Emission stops once the running parameter exceeds 1.
func BuildDashedMarkings(curve *Spline, dashLength, dashGap float64, count int, ground HeightSampler) ([]QuadPlacement, error) {
	if curve == nil {
		return nil, fmt.Errorf("markings need a curve: %w", ErrInvalidInput)
	}
	if dashLength <= 0 {
		return nil, fmt.Errorf("dash length must be positive, got %v: %w", dashLength, ErrInvalidInput)
	}
	if dashGap < 0 {
		return nil, fmt.Errorf("dash gap must not be negative, got %v: %w", dashGap, ErrInvalidInput)
	}
	if count < 1 {
		return nil, fmt.Errorf("dash count must be at least 1, got %d: %w", count, ErrInvalidInput)
	}

	placements := make([]QuadPlacement, 0, count)

	t := 0.0
	for i := 0; i < count && t <= 1; i++ {
		mid := t + dashLength/2
		if mid > 1 {
			mid = 1
		}

		point := curve.Point(mid)
		tangent := curve.Tangent(mid)
		point[1] = ground.HeightAt(point.X(), point.Z()) + markingClearance

		placements = append(placements, QuadPlacement{
			Position: point,
			Heading:  math.Atan2(tangent.X(), tangent.Z()),
		})

		t += dashLength + dashGap
	}

	return placements, nil
}
