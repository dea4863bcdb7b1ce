package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestDefaultConfigSane(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Terrain.Resolution < 1 {
		t.Error("default terrain resolution must be positive")
	}
	if cfg.Terrain.Extent <= 0 {
		t.Error("default terrain extent must be positive")
	}
	if cfg.Road.Segments < 1 {
		t.Error("default road segments must be positive")
	}
	if cfg.Road.ExtendThreshold <= 0 || cfg.Road.ExtendThreshold >= 1 {
		t.Errorf("default extend threshold %v not in (0,1)", cfg.Road.ExtendThreshold)
	}
	if cfg.Vehicle.MaxSpeed <= 0 {
		t.Error("default max speed must be positive")
	}
	if cfg.World.TimeOfDay < 0 || cfg.World.TimeOfDay > 1 {
		t.Errorf("default time of day %v not in [0,1]", cfg.World.TimeOfDay)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected an error for a missing config file")
	}
	if cfg == nil {
		t.Fatal("expected defaults despite the missing file")
	}
	if cfg.Terrain.Resolution != DefaultConfig().Terrain.Resolution {
		t.Error("missing file did not fall back to defaults")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	original := DefaultConfig()
	original.Terrain.Seed = 987
	original.World.Season = Winter
	original.Road.Width = 10.5

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Terrain.Seed != 987 {
		t.Errorf("seed %d, want 987", loaded.Terrain.Seed)
	}
	if loaded.World.Season != Winter {
		t.Errorf("season %s, want winter", loaded.World.Season)
	}
	if loaded.Road.Width != 10.5 {
		t.Errorf("road width %v, want 10.5", loaded.Road.Width)
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := "terrain:\n  resolution: 64\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Terrain.Resolution != 64 {
		t.Errorf("resolution %d, want the overridden 64", cfg.Terrain.Resolution)
	}
	if cfg.Road.Width != DefaultConfig().Road.Width {
		t.Error("unrelated defaults were lost on partial override")
	}
}

func TestParseSeason(t *testing.T) {
	cases := map[string]Season{
		"spring": Spring,
		"summer": Summer,
		"autumn": Autumn,
		"winter": Winter,
	}
	for name, want := range cases {
		got, err := ParseSeason(name)
		if err != nil {
			t.Errorf("ParseSeason(%q) failed: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseSeason(%q) = %v, want %v", name, got, want)
		}
		if got.String() != name {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), name)
		}
	}

	if _, err := ParseSeason("monsoon"); err == nil {
		t.Error("expected an error for an unknown season")
	}
}

func TestSeasonYAML(t *testing.T) {
	var w WorldConfig
	if err := yaml.Unmarshal([]byte("season: winter\n"), &w); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if w.Season != Winter {
		t.Errorf("season %v, want winter", w.Season)
	}

	if err := yaml.Unmarshal([]byte("season: marshmallow\n"), &w); err == nil {
		t.Error("expected an error for an unknown season value")
	}

	out, err := yaml.Marshal(WorldConfig{Season: Autumn})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(out), "season: autumn") {
		t.Errorf("marshal output %q missing season name", out)
	}
}
