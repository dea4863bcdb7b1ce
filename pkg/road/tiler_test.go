package road

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func straightControls() []mgl64.Vec3 {
	return []mgl64.Vec3{{0, 0, 0}, {0, 0, 50}, {0, 0, 100}}
}

func TestNewTilerInvalidInput(t *testing.T) {
	cases := []struct {
		name      string
		points    []mgl64.Vec3
		threshold float64
		maxTiles  int
	}{
		{"one point", []mgl64.Vec3{{0, 0, 0}}, 0.4, 0},
		{"zero threshold", straightControls(), 0, 0},
		{"threshold one", straightControls(), 1, 0},
		{"negative max tiles", straightControls(), 0.4, -1},
		{"zero-length path", []mgl64.Vec3{{0, 0, 0}, {0, 0, 0}}, 0.4, 0},
	}

	for _, tc := range cases {
		_, err := NewTiler(tc.points, 8, 10, tc.threshold, tc.maxTiles, flatGround{})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestTilerBuildsFirstTile(t *testing.T) {
	tiler, err := NewTiler(straightControls(), 8, 10, 0.4, 0, flatGround{})
	if err != nil {
		t.Fatalf("NewTiler failed: %v", err)
	}

	if len(tiler.Tiles()) != 1 {
		t.Fatalf("got %d tiles, want 1", len(tiler.Tiles()))
	}
	if n := len(tiler.Tiles()[0].Vertices); n != 22 {
		t.Errorf("first tile has %d vertices, want 22", n)
	}
}

func TestTilerNoExtensionBelowThreshold(t *testing.T) {
	tiler, err := NewTiler(straightControls(), 8, 10, 0.4, 0, flatGround{})
	if err != nil {
		t.Fatalf("NewTiler failed: %v", err)
	}

	// Path length is 100; the threshold sits at z = 40
	for _, z := range []float64{0, 10, 39.9} {
		ribbon, err := tiler.Advance(mgl64.Vec3{0, 0, z})
		if err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
		if ribbon != nil {
			t.Errorf("z = %v: extended below the threshold", z)
		}
	}
	if len(tiler.Tiles()) != 1 {
		t.Errorf("got %d tiles, want 1", len(tiler.Tiles()))
	}
}

func TestTilerExtendsPastThreshold(t *testing.T) {
	tiler, err := NewTiler(straightControls(), 8, 10, 0.4, 0, flatGround{})
	if err != nil {
		t.Fatalf("NewTiler failed: %v", err)
	}

	ribbon, err := tiler.Advance(mgl64.Vec3{0, 0, 41})
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if ribbon == nil {
		t.Fatal("expected extension past the threshold")
	}
	if len(tiler.Tiles()) != 2 {
		t.Fatalf("got %d tiles, want 2", len(tiler.Tiles()))
	}

	// The new tile starts one path length further along
	if origin := tiler.Origin(); math.Abs(origin.Z()-100) > 1e-9 {
		t.Errorf("new tile origin z = %v, want 100", origin.Z())
	}
	first, _ := ribbon.Pair(0)
	if math.Abs(first.Position.Z()-100) > 1e-9 {
		t.Errorf("new tile first pair z = %v, want 100", first.Position.Z())
	}

	// Same position does not trigger again until the next threshold
	again, err := tiler.Advance(mgl64.Vec3{0, 0, 41})
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if again != nil {
		t.Error("extended twice for the same position")
	}
}

func TestTilerChainsTiles(t *testing.T) {
	tiler, err := NewTiler(straightControls(), 8, 10, 0.4, 0, flatGround{})
	if err != nil {
		t.Fatalf("NewTiler failed: %v", err)
	}

	for _, z := range []float64{45, 145, 245} {
		if _, err := tiler.Advance(mgl64.Vec3{0, 0, z}); err != nil {
			t.Fatalf("Advance at z=%v failed: %v", z, err)
		}
	}

	if len(tiler.Tiles()) != 4 {
		t.Errorf("got %d tiles, want 4", len(tiler.Tiles()))
	}
}

func TestTilerEvictsOldTiles(t *testing.T) {
	tiler, err := NewTiler(straightControls(), 8, 10, 0.4, 2, flatGround{})
	if err != nil {
		t.Fatalf("NewTiler failed: %v", err)
	}

	for _, z := range []float64{45, 145, 245} {
		if _, err := tiler.Advance(mgl64.Vec3{0, 0, z}); err != nil {
			t.Fatalf("Advance at z=%v failed: %v", z, err)
		}
	}

	tiles := tiler.Tiles()
	if len(tiles) != 2 {
		t.Fatalf("got %d tiles, want 2 after eviction", len(tiles))
	}

	// The newest tiles survive
	last, _ := tiles[1].Pair(0)
	if math.Abs(last.Position.Z()-300) > 1e-9 {
		t.Errorf("newest tile starts at z = %v, want 300", last.Position.Z())
	}
}
