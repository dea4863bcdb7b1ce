package engine

import (
	"context"
	"fmt"
	"time"

	"chilldrive/internal/logger"
	"chilldrive/internal/noise"
	"chilldrive/pkg/config"
	"chilldrive/pkg/road"
)

// Engine owns the simulation: the generated world, the road tiler, the car
// and the day cycle, advanced together by a fixed-cap frame loop. Rendering
// is a consumer concern; the engine exposes the geometry and state and
// never draws.
type Engine struct {
	config   *config.Config
	logger   *logger.Logger
	params   SeasonParams
	world    *World
	ground   road.HeightSampler
	tiler    *road.Tiler
	markings []road.QuadPlacement
	cycle    *Cycle
	car      CarState
	input    InputSource
	elapsed  float64
}

// New creates a new engine from configuration. A zero terrain seed derives
// one from the clock.
func New(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	seed := cfg.Terrain.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := noise.NewGenerator(seed)
	params := SeasonParamsFor(cfg.World.Season)

	world, err := BuildWorld(cfg.Terrain, cfg.World, params, gen)
	if err != nil {
		return nil, fmt.Errorf("failed to build world: %v", err)
	}
	log.Infof("world ready: %d trees, %d rocks, %d creatures, %d water bodies (season %s, seed %d)",
		len(world.Trees), len(world.Rocks), len(world.Wildlife), len(world.Water), cfg.World.Season, seed)

	ground := GroundFor(cfg.Terrain, params, gen)

	controls := RoadControls(gen, cfg.Road.SegmentLength, 5)
	tiler, err := road.NewTiler(controls, cfg.Road.Width, cfg.Road.Segments,
		cfg.Road.ExtendThreshold, cfg.Road.MaxTiles, ground)
	if err != nil {
		return nil, fmt.Errorf("failed to build road: %v", err)
	}

	markings, err := road.BuildDashedMarkings(tiler.CurrentCurve(),
		cfg.Road.DashLength, cfg.Road.DashGap, cfg.Road.DashCount, ground)
	if err != nil {
		return nil, fmt.Errorf("failed to build road markings: %v", err)
	}
	log.Debugf("first road tile: %d vertices, %d markings",
		len(tiler.Tiles()[0].Vertices), len(markings))

	start := tiler.Origin()
	car := NewCarState(cfg.Vehicle, ground, start.X(), start.Z())

	return &Engine{
		config:   cfg,
		logger:   log,
		params:   params,
		world:    world,
		ground:   ground,
		tiler:    tiler,
		markings: markings,
		cycle:    NewCycle(cfg.World.TimeOfDay, cfg.World.DayLength),
		car:      car,
		input:    NewAutopilot(noise.NewGenerator(seed + 1)),
	}, nil
}

// SetInputSource replaces the autopilot with another input source.
func (e *Engine) SetInputSource(src InputSource) {
	e.input = src
}

// World returns the scene registry.
func (e *Engine) World() *World {
	return e.world
}

// Car returns the current vehicle state.
func (e *Engine) Car() CarState {
	return e.car
}

// Road returns the road tiler.
func (e *Engine) Road() *road.Tiler {
	return e.tiler
}

// Markings returns every dash placement built so far, oldest tile first.
func (e *Engine) Markings() []road.QuadPlacement {
	return e.markings
}

// Run drives the main simulation loop until the context is cancelled or the
// configured duration elapses.
func (e *Engine) Run(ctx context.Context) error {
	lastUpdate := time.Now()
	lastStatus := lastUpdate

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("shutting down")
			return ctx.Err()
		default:
		}

		currentTime := time.Now()
		deltaTime := currentTime.Sub(lastUpdate).Seconds()
		lastUpdate = currentTime

		if err := e.Step(deltaTime); err != nil {
			return err
		}

		if e.config.Sim.Duration > 0 && e.elapsed >= e.config.Sim.Duration {
			e.logger.Infof("finished after %.1fs", e.elapsed)
			return nil
		}

		if currentTime.Sub(lastStatus) >= time.Second {
			lastStatus = currentTime
			e.logger.Debugf("car at (%.1f, %.1f, %.1f) speed %.1f, %s, ambient %.2f, %d road tiles",
				e.car.Position.X(), e.car.Position.Y(), e.car.Position.Z(), e.car.Speed,
				e.cycle.Phase(), e.cycle.Ambient(e.params), len(e.tiler.Tiles()))
			if body, dist := e.world.NearestWater(e.car.Position); body != nil {
				e.logger.Debugf("nearest water %.0f away at (%.1f, %.1f)", dist, body.Center.X(), body.Center.Z())
			}
		}

		// Cap the frame rate
		if e.config.Sim.FrameRate > 0 {
			frameTime := time.Since(currentTime)
			targetFrameTime := time.Second / time.Duration(e.config.Sim.FrameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}
}

// Step advances the simulation by one frame of deltaTime seconds.
func (e *Engine) Step(deltaTime float64) error {
	e.elapsed += deltaTime
	e.cycle.Advance(deltaTime)

	in := e.input.Next(deltaTime)
	e.car = StepCar(e.config.Vehicle, e.ground, e.car, in, deltaTime)

	ribbon, err := e.tiler.Advance(e.car.Position)
	if err != nil {
		return fmt.Errorf("failed to extend road: %v", err)
	}
	if ribbon != nil {
		markings, err := road.BuildDashedMarkings(e.tiler.CurrentCurve(),
			e.config.Road.DashLength, e.config.Road.DashGap, e.config.Road.DashCount, e.ground)
		if err != nil {
			return fmt.Errorf("failed to build road markings: %v", err)
		}
		e.markings = append(e.markings, markings...)
		e.logger.Debugf("extended road: tile %d, %d markings", len(e.tiler.Tiles()), len(markings))
	}

	return nil
}
