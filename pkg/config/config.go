package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Road    RoadConfig    `yaml:"road"`
	Vehicle VehicleConfig `yaml:"vehicle"`
	World   WorldConfig   `yaml:"world"`
	Sim     SimConfig     `yaml:"sim"`
}

// TerrainConfig contains heightfield generation configuration
type TerrainConfig struct {
	Resolution    int     `yaml:"resolution"`     // Grid resolution (cells per side)
	Extent        float64 `yaml:"extent"`         // World-space width/depth covered by the grid
	MaxHeight     float64 `yaml:"max_height"`     // Elevation multiplier for normalized grid values
	BaseFrequency float64 `yaml:"base_frequency"` // First-octave frequency of the direct sampler
	Amplitude     float64 `yaml:"amplitude"`      // Elevation scale of the direct sampler
	WaterLevel    float64 `yaml:"water_level"`    // Elevation floor for lakes and rivers
	Seed          int64   `yaml:"seed"`           // 0 means derive from current time
}

// RoadConfig contains road geometry configuration
type RoadConfig struct {
	Width           float64 `yaml:"width"`            // Ribbon width
	Segments        int     `yaml:"segments"`         // Sample steps per ribbon
	SegmentLength   float64 `yaml:"segment_length"`   // World-space length of one road tile
	ExtendThreshold float64 `yaml:"extend_threshold"` // Fraction of tile length that triggers extension
	DashLength      float64 `yaml:"dash_length"`      // Center-line dash length in curve parameter units
	DashGap         float64 `yaml:"dash_gap"`         // Gap between dashes in curve parameter units
	DashCount       int     `yaml:"dash_count"`       // Maximum dashes per tile
	MaxTiles        int     `yaml:"max_tiles"`        // Retained road tiles, 0 keeps everything
}

// VehicleConfig contains car physics configuration
type VehicleConfig struct {
	MaxSpeed       float64 `yaml:"max_speed"`       // Units per second
	Acceleration   float64 `yaml:"acceleration"`    // Units per second squared
	BrakeDecel     float64 `yaml:"brake_decel"`     // Units per second squared
	Drag           float64 `yaml:"drag"`            // Fraction of speed lost per second
	SteerRate      float64 `yaml:"steer_rate"`      // Radians per second at full speed
	Wheelbase      float64 `yaml:"wheelbase"`       // Front/rear wheel distance
	Track          float64 `yaml:"track"`           // Left/right wheel distance
	RideHeight     float64 `yaml:"ride_height"`     // Body height above the ground
	SuspensionRate float64 `yaml:"suspension_rate"` // Vertical approach rate toward ground height
}

// WorldConfig contains scene population and cycle configuration
type WorldConfig struct {
	Season          Season  `yaml:"season"`
	TimeOfDay       float64 `yaml:"time_of_day"` // 0.0-1.0, 0 = midnight, 0.5 = noon
	DayLength       float64 `yaml:"day_length"`  // Full day/night cycle in seconds
	TreeDensity     float64 `yaml:"tree_density"`
	RockDensity     float64 `yaml:"rock_density"`
	WildlifeDensity float64 `yaml:"wildlife_density"`
}

// SimConfig contains simulation loop configuration
type SimConfig struct {
	FrameRate int     `yaml:"framerate"`
	Duration  float64 `yaml:"duration"` // Seconds to run, 0 runs until interrupted
	LogLevel  string  `yaml:"log_level"`
}

// Season identifies one of the four fixed seasons
type Season int

// Seasons
const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

// seasonNames maps seasons to their YAML representation
var seasonNames = map[Season]string{
	Spring: "spring",
	Summer: "summer",
	Autumn: "autumn",
	Winter: "winter",
}

// String returns the season name
func (s Season) String() string {
	if name, ok := seasonNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Season(%d)", int(s))
}

// ParseSeason converts a season name to its enum value
func ParseSeason(name string) (Season, error) {
	for s, n := range seasonNames {
		if n == name {
			return s, nil
		}
	}
	return Spring, fmt.Errorf("unknown season %q", name)
}

// UnmarshalYAML implements yaml.Unmarshaler for Season
func (s *Season) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	season, err := ParseSeason(name)
	if err != nil {
		return err
	}
	*s = season
	return nil
}

// MarshalYAML implements yaml.Marshaler for Season
func (s Season) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Resolution:    128,
			Extent:        1024.0,
			MaxHeight:     24.0,
			BaseFrequency: 0.01,
			Amplitude:     12.0,
			WaterLevel:    1.5,
			Seed:          0, // Random seed
		},
		Road: RoadConfig{
			Width:           8.0,
			Segments:        100,
			SegmentLength:   200.0,
			ExtendThreshold: 0.4,
			DashLength:      0.02,
			DashGap:         0.03,
			DashCount:       20,
			MaxTiles:        0, // Keep every tile
		},
		Vehicle: VehicleConfig{
			MaxSpeed:       30.0,
			Acceleration:   8.0,
			BrakeDecel:     16.0,
			Drag:           0.4,
			SteerRate:      1.2,
			Wheelbase:      2.6,
			Track:          1.6,
			RideHeight:     0.6,
			SuspensionRate: 6.0,
		},
		World: WorldConfig{
			Season:          Summer,
			TimeOfDay:       0.3, // Morning
			DayLength:       600.0,
			TreeDensity:     5.0,
			RockDensity:     3.0,
			WildlifeDensity: 1.0,
		},
		Sim: SimConfig{
			FrameRate: 60,
			Duration:  0,
			LogLevel:  "info",
		},
	}
}

// LoadConfig loads the configuration from a file
func LoadConfig(filePath string) (*Config, error) {
	// Create default config
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}
