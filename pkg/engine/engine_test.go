package engine

import (
	"testing"

	"chilldrive/internal/logger"
	"chilldrive/pkg/config"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Terrain.Seed = 42
	cfg.Terrain.Resolution = 32
	cfg.Terrain.Extent = 256
	cfg.Road.Segments = 20
	cfg.Sim.LogLevel = "error"
	return cfg
}

func TestEngineNew(t *testing.T) {
	e, err := New(testConfig(), logger.NewLogger("error"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if e.World() == nil || e.World().Terrain == nil {
		t.Fatal("engine has no world")
	}
	if len(e.Road().Tiles()) != 1 {
		t.Errorf("got %d road tiles at startup, want 1", len(e.Road().Tiles()))
	}
	if len(e.Markings()) == 0 {
		t.Error("no dash placements at startup")
	}

	car := e.Car()
	if car.Position.Y() <= car.GroundHeight {
		t.Errorf("car starts below ground: y %v, ground %v", car.Position.Y(), car.GroundHeight)
	}
}

func TestEngineStepDrivesForward(t *testing.T) {
	e, err := New(testConfig(), logger.NewLogger("error"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	start := e.Car().Position
	for i := 0; i < 300; i++ {
		if err := e.Step(1.0 / 60); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	moved := e.Car().Position.Sub(start).Len()
	if moved <= 0 {
		t.Error("autopilot never moved the car")
	}
}

// fullThrottle drives straight ahead at full throttle.
type fullThrottle struct{}

func (fullThrottle) Next(dt float64) InputState { return InputState{Throttle: 1} }

func TestEngineExtendsRoadWhileDriving(t *testing.T) {
	cfg := testConfig()
	cfg.Road.SegmentLength = 30 // Short tiles so a brief drive crosses the threshold

	e, err := New(cfg, logger.NewLogger("error"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	e.SetInputSource(fullThrottle{})
	startMarkings := len(e.Markings())

	// Drive long enough to cover several tile lengths
	for i := 0; i < 3600; i++ {
		if err := e.Step(1.0 / 60); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	if tiles := len(e.Road().Tiles()); tiles < 2 {
		t.Errorf("got %d road tiles after driving, want at least 2", tiles)
	}
	if got := len(e.Markings()); got <= startMarkings {
		t.Errorf("got %d dash placements after driving, want more than the initial %d", got, startMarkings)
	}
}
