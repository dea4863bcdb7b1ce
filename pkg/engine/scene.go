package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"chilldrive/internal/noise"
	"chilldrive/pkg/config"
	"chilldrive/pkg/road"
	"chilldrive/pkg/terrain"
)

// CreatureKind identifies a wildlife type
type CreatureKind int

// Creature kinds
const (
	CreatureBird CreatureKind = iota
	CreatureDeer
	CreatureRabbit
)

// SceneObject is one static placed object (tree or rock).
type SceneObject struct {
	ID       int
	Position mgl64.Vec3
	Scale    mgl64.Vec3
	Rotation float64 // Around the vertical axis
}

// Creature is one placed wildlife instance. Behavior and animation belong to
// the presentation layer; the scene only owns the spawn placement.
type Creature struct {
	ID       int
	Kind     CreatureKind
	Position mgl64.Vec3
	Heading  float64
}

// WaterBody marks a low-lying area read as a lake surface.
type WaterBody struct {
	Center mgl64.Vec3
	Radius float64
}

// World holds the typed scene registry: every collection is filled once at
// creation time, so nothing ever has to rediscover objects by walking a
// scene graph.
type World struct {
	Terrain  *terrain.Grid
	Trees    []SceneObject
	Rocks    []SceneObject
	Wildlife []Creature
	Water    []WaterBody

	nextID int
}

// BuildWorld generates the terrain grid and populates the registry. Object
// counts scale with the configured densities, the grid area and the season.
func BuildWorld(cfg config.TerrainConfig, world config.WorldConfig, params SeasonParams, gen *noise.Generator) (*World, error) {
	grid, err := terrain.NewGrid(cfg.Resolution, cfg.Extent, cfg.MaxHeight, gen)
	if err != nil {
		return nil, err
	}

	w := &World{Terrain: grid}

	area := cfg.Extent * cfg.Extent
	w.placeTrees(int(world.TreeDensity*params.TreeScale*area/100000), gen)
	w.placeRocks(int(world.RockDensity*area/100000), gen)
	w.placeWildlife(int(world.WildlifeDensity*params.WildlifeScale*area/100000), gen)
	if params.WaterClamp {
		w.findWater(gen)
	}

	return w, nil
}

// randomPos picks a uniform random position inside the terrain extent.
func (w *World) randomPos(gen *noise.Generator) (x, z float64) {
	half := w.Terrain.Extent / 2
	return gen.RandomRange(-half, half), gen.RandomRange(-half, half)
}

func (w *World) placeTrees(count int, gen *noise.Generator) {
	for i := 0; i < count; i++ {
		x, z := w.randomPos(gen)

		// Trees grow on grass, not in lakes or on peaks
		if w.Terrain.MaterialAt(x, z) != terrain.MaterialGrass {
			continue
		}

		height := 2.0 + gen.RandomFloat()*3.0
		w.nextID++
		w.Trees = append(w.Trees, SceneObject{
			ID:       w.nextID,
			Position: mgl64.Vec3{x, w.Terrain.HeightAt(x, z), z},
			Scale:    mgl64.Vec3{1.0, height, 1.0},
			Rotation: gen.RandomAngle(),
		})
	}
}

func (w *World) placeRocks(count int, gen *noise.Generator) {
	for i := 0; i < count; i++ {
		x, z := w.randomPos(gen)

		// Rocks avoid only the water
		if w.Terrain.MaterialAt(x, z) == terrain.MaterialWater {
			continue
		}

		size := 0.5 + gen.RandomFloat()*1.5
		w.nextID++
		w.Rocks = append(w.Rocks, SceneObject{
			ID:       w.nextID,
			Position: mgl64.Vec3{x, w.Terrain.HeightAt(x, z), z},
			Scale:    mgl64.Vec3{size, size, size},
			Rotation: gen.RandomAngle(),
		})
	}
}

func (w *World) placeWildlife(count int, gen *noise.Generator) {
	for i := 0; i < count; i++ {
		x, z := w.randomPos(gen)
		ground := w.Terrain.HeightAt(x, z)

		kind := CreatureKind(int(gen.RandomFloat() * 3))
		y := ground
		if kind == CreatureBird {
			// Birds circle above the canopy
			y = ground + 8.0 + gen.RandomFloat()*12.0
		} else if w.Terrain.MaterialAt(x, z) == terrain.MaterialWater {
			continue
		}

		w.nextID++
		w.Wildlife = append(w.Wildlife, Creature{
			ID:       w.nextID,
			Kind:     kind,
			Position: mgl64.Vec3{x, y, z},
			Heading:  gen.RandomAngle(),
		})
	}
}

// findWater scans the grid for low-lying cells and registers them as lake
// surfaces. Clustered neighbors merge into whichever body claims them first.
func (w *World) findWater(gen *noise.Generator) {
	res := w.Terrain.Resolution
	cell := w.Terrain.Extent / float64(res)
	half := w.Terrain.Extent / 2

	for iz := 0; iz < res; iz++ {
		for ix := 0; ix < res; ix++ {
			if w.Terrain.NormalizedAt(ix, iz) >= 0.15 {
				continue
			}

			x := float64(ix)*cell - half
			z := float64(iz)*cell - half

			claimed := false
			for _, body := range w.Water {
				dx := x - body.Center.X()
				dz := z - body.Center.Z()
				if math.Sqrt(dx*dx+dz*dz) < body.Radius {
					claimed = true
					break
				}
			}
			if !claimed {
				w.Water = append(w.Water, WaterBody{
					Center: mgl64.Vec3{x, w.Terrain.HeightAt(x, z), z},
					Radius: cell * (2 + gen.RandomFloat()*2),
				})
			}
		}
	}
}

// NearestWater returns the closest water body to a position and its
// distance, or nil when the world has none.
func (w *World) NearestWater(pos mgl64.Vec3) (*WaterBody, float64) {
	var nearest *WaterBody
	minDist := math.MaxFloat64

	for i := range w.Water {
		d := w.Water[i].Center.Sub(pos).Len()
		if d < minDist {
			nearest = &w.Water[i]
			minDist = d
		}
	}

	return nearest, minDist
}

// RoadControls lays out the control points for the first road tile: a gentle
// noise-driven wiggle around a straight run of the given length starting at
// the origin, so the road curves without ever doubling back.
func RoadControls(gen *noise.Generator, length float64, count int) []mgl64.Vec3 {
	if count < 2 {
		count = 2
	}

	points := make([]mgl64.Vec3, count)
	for i := range points {
		z := length * float64(i) / float64(count-1)
		wiggle := gen.Sample1D(z*0.01) * length * 0.1
		points[i] = mgl64.Vec3{wiggle, 0, z}
	}

	// Anchor the first point on the path axis so tiles chain cleanly
	points[0][0] = 0

	return points
}

// GroundFor builds the live-query sampler the car follows. The road is
// unbounded, so it uses direct noise evaluation rather than the grid; see
// the terrain package for the trade-off.
func GroundFor(cfg config.TerrainConfig, params SeasonParams, gen *noise.Generator) road.HeightSampler {
	return terrain.NewDirectSampler(gen, cfg.BaseFrequency, cfg.Amplitude, cfg.WaterLevel, params.WaterClamp)
}
