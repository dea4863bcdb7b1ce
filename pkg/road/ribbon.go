package road

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Clearance keeps ribbon geometry just above the terrain surface so the
// strip never intersects it.
const Clearance = 0.2

// Vertex is one ribbon vertex with a smooth lighting normal.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
}

// Ribbon is a strip of paired left/right vertices following a curve, one
// pair per sample step. Vertex count is exactly 2*(Segments+1); pairs sit at
// even/odd indices. The consumer may clone and reposition copies without
// rebuilding.
type Ribbon struct {
	Vertices []Vertex
	Segments int
	Width    float64
}

// BuildRibbon samples a smooth curve through the control points at fixed
// steps and emits a ribbon of the given width: at each step two vertices
// offset half a width left and right of the centerline along the local curve
// normal, both at the ground elevation under the curve sample plus Clearance.
func BuildRibbon(controlPoints []mgl64.Vec3, width float64, segments int, ground HeightSampler) (*Ribbon, error) {
	curve, err := NewSpline(controlPoints)
	if err != nil {
		return nil, err
	}

	return buildRibbon(curve, width, segments, ground)
}

func buildRibbon(curve *Spline, width float64, segments int, ground HeightSampler) (*Ribbon, error) {
	if segments < 1 {
		return nil, fmt.Errorf("ribbon needs at least 1 segment, got %d: %w", segments, ErrInvalidInput)
	}
	if width <= 0 {
		return nil, fmt.Errorf("ribbon width must be positive, got %v: %w", width, ErrInvalidInput)
	}

	ribbon := &Ribbon{
		Vertices: make([]Vertex, 0, 2*(segments+1)),
		Segments: segments,
		Width:    width,
	}

	half := width / 2

	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		point := curve.Point(t)
		tangent := curve.Tangent(t)

		// Planar normal: tangent rotated 90° in the horizontal plane
		normal := mgl64.Vec3{-tangent.Z(), 0, tangent.X()}
		if normal.Len() == 0 {
			// Vertical tangent has no horizontal heading; keep the strip axis-aligned
			normal = mgl64.Vec3{1, 0, 0}
		} else {
			normal = normal.Normalize()
		}

		// Both vertices share the centerline elevation so the pair separation
		// stays exactly width on cross-sloped terrain
		y := ground.HeightAt(point.X(), point.Z()) + Clearance

		left := point.Add(normal.Mul(half))
		right := point.Sub(normal.Mul(half))
		left[1] = y
		right[1] = y

		ribbon.Vertices = append(ribbon.Vertices,
			Vertex{Position: left},
			Vertex{Position: right},
		)
	}

	ribbon.computeNormals()

	return ribbon, nil
}

// computeNormals recomputes smooth per-vertex normals as the average of
// adjacent face normals.
func (r *Ribbon) computeNormals() {
	faces := make([]mgl64.Vec3, r.Segments)
	for i := 0; i < r.Segments; i++ {
		left := r.Vertices[2*i].Position
		right := r.Vertices[2*i+1].Position
		leftNext := r.Vertices[2*(i+1)].Position

		across := right.Sub(left)
		advance := leftNext.Sub(left)

		face := advance.Cross(across)
		if face.Len() == 0 {
			face = mgl64.Vec3{0, 1, 0}
		} else {
			face = face.Normalize()
		}
		faces[i] = face
	}

	for i := 0; i <= r.Segments; i++ {
		normal := mgl64.Vec3{}
		if i > 0 {
			normal = normal.Add(faces[i-1])
		}
		if i < r.Segments {
			normal = normal.Add(faces[i])
		}
		if normal.Len() == 0 {
			normal = mgl64.Vec3{0, 1, 0}
		} else {
			normal = normal.Normalize()
		}
		r.Vertices[2*i].Normal = normal
		r.Vertices[2*i+1].Normal = normal
	}
}

// Pair returns the left and right vertex at a sample index.
func (r *Ribbon) Pair(i int) (left, right Vertex) {
	return r.Vertices[2*i], r.Vertices[2*i+1]
}
