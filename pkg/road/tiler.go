package road

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Tiler extends the road ahead of a tracked position. Each tile is one
// ribbon; when the tracked position has covered the threshold fraction of
// the current tile's length from its origin, the control points are shifted
// one tile length along the path direction and the next ribbon is built.
// Old tiles are retained unless a maximum tile count evicts them.
type Tiler struct {
	ground    HeightSampler
	width     float64
	segments  int
	threshold float64
	maxTiles  int

	controls []mgl64.Vec3
	curve    *Spline
	origin   mgl64.Vec3
	dir      mgl64.Vec3
	length   float64
	tiles    []*Ribbon
}

// NewTiler builds the first road tile from the given control points and
// prepares incremental extension. maxTiles of 0 keeps every tile.
func NewTiler(controlPoints []mgl64.Vec3, width float64, segments int, threshold float64, maxTiles int, ground HeightSampler) (*Tiler, error) {
	if threshold <= 0 || threshold >= 1 {
		return nil, fmt.Errorf("extend threshold must be in (0,1), got %v: %w", threshold, ErrInvalidInput)
	}
	if maxTiles < 0 {
		return nil, fmt.Errorf("max tiles must not be negative, got %d: %w", maxTiles, ErrInvalidInput)
	}

	curve, err := NewSpline(controlPoints)
	if err != nil {
		return nil, err
	}

	first := controlPoints[0]
	last := controlPoints[len(controlPoints)-1]
	chord := last.Sub(first)
	if chord.Len() == 0 {
		return nil, fmt.Errorf("control path has zero length: %w", ErrInvalidInput)
	}

	t := &Tiler{
		ground:    ground,
		width:     width,
		segments:  segments,
		threshold: threshold,
		maxTiles:  maxTiles,
		controls:  curve.ControlPoints(),
		curve:     curve,
		origin:    first,
		dir:       chord.Normalize(),
		length:    chord.Len(),
	}

	ribbon, err := buildRibbon(curve, width, segments, ground)
	if err != nil {
		return nil, err
	}
	t.tiles = append(t.tiles, ribbon)

	return t, nil
}

// Advance reports the tracked position and returns the freshly built ribbon
// when it triggered an extension, nil otherwise.
func (t *Tiler) Advance(pos mgl64.Vec3) (*Ribbon, error) {
	progress := pos.Sub(t.origin).Dot(t.dir)
	if progress < t.threshold*t.length {
		return nil, nil
	}

	offset := t.dir.Mul(t.length)
	next := make([]mgl64.Vec3, len(t.controls))
	for i, p := range t.controls {
		next[i] = p.Add(offset)
	}

	curve, err := NewSpline(next)
	if err != nil {
		return nil, err
	}

	ribbon, err := buildRibbon(curve, t.width, t.segments, t.ground)
	if err != nil {
		return nil, err
	}

	t.controls = next
	t.curve = curve
	t.origin = t.origin.Add(offset)
	t.tiles = append(t.tiles, ribbon)
	if t.maxTiles > 0 && len(t.tiles) > t.maxTiles {
		t.tiles = t.tiles[len(t.tiles)-t.maxTiles:]
	}

	return ribbon, nil
}

// Tiles returns the retained road tiles, oldest first.
func (t *Tiler) Tiles() []*Ribbon {
	return t.tiles
}

// CurrentCurve returns the centerline spline of the newest tile, for
// placing markings on it.
func (t *Tiler) CurrentCurve() *Spline {
	return t.curve
}

// Origin returns the world-space origin of the newest tile.
func (t *Tiler) Origin() mgl64.Vec3 {
	return t.origin
}

// Direction returns the unit path direction tiles advance along.
func (t *Tiler) Direction() mgl64.Vec3 {
	return t.dir
}
