package engine

import (
	"math"

	"chilldrive/pkg/config"
)

// DayPhase identifies a time-of-day band
type DayPhase int

// Day phases
const (
	Night DayPhase = iota
	Dawn
	Day
	Dusk
)

// phaseNames maps day phases to display names
var phaseNames = map[DayPhase]string{
	Night: "night",
	Dawn:  "dawn",
	Day:   "day",
	Dusk:  "dusk",
}

// String returns the phase name
func (p DayPhase) String() string {
	return phaseNames[p]
}

// SeasonParams tunes the world for one season.
type SeasonParams struct {
	WaterClamp    bool    // Lakes hold water; false drains them
	AmbientScale  float64 // Multiplier on the daylight ambient level
	FogDensity    float64 // 0-1 base fog amount
	TreeScale     float64 // Multiplier on configured tree density
	WildlifeScale float64 // Multiplier on configured wildlife density
}

// seasonTable maps every season to its parameters. The enum is closed:
// SeasonParamsFor and the table tests keep it exhaustive.
var seasonTable = map[config.Season]SeasonParams{
	config.Spring: {WaterClamp: true, AmbientScale: 1.0, FogDensity: 0.3, TreeScale: 1.1, WildlifeScale: 1.3},
	config.Summer: {WaterClamp: true, AmbientScale: 1.1, FogDensity: 0.1, TreeScale: 1.0, WildlifeScale: 1.0},
	config.Autumn: {WaterClamp: false, AmbientScale: 0.9, FogDensity: 0.5, TreeScale: 0.8, WildlifeScale: 0.7},
	config.Winter: {WaterClamp: true, AmbientScale: 0.7, FogDensity: 0.4, TreeScale: 0.5, WildlifeScale: 0.3},
}

// SeasonParamsFor returns the parameters for a season.
func SeasonParamsFor(s config.Season) SeasonParams {
	if params, ok := seasonTable[s]; ok {
		return params
	}
	return seasonTable[config.Summer]
}

// Cycle tracks time of day on a fixed real-time period. TimeOfDay runs
// 0.0-1.0 with 0 at midnight and 0.5 at noon.
type Cycle struct {
	TimeOfDay float64
	dayLength float64
}

// NewCycle starts a day cycle at the given time of day. Out-of-range values
// wrap into [0,1), negatives counting back from midnight.
func NewCycle(timeOfDay, dayLength float64) *Cycle {
	t := math.Mod(timeOfDay, 1.0)
	if t < 0 {
		t++
	}
	return &Cycle{
		TimeOfDay: t,
		dayLength: dayLength,
	}
}

// Advance moves the cycle forward by dt seconds, wrapping at midnight.
func (c *Cycle) Advance(dt float64) {
	if c.dayLength <= 0 {
		return
	}
	c.TimeOfDay = math.Mod(c.TimeOfDay+dt/c.dayLength, 1.0)
}

// Phase returns the current time-of-day band.
func (c *Cycle) Phase() DayPhase {
	switch {
	case c.TimeOfDay < 0.2:
		return Night
	case c.TimeOfDay < 0.3:
		return Dawn
	case c.TimeOfDay < 0.75:
		return Day
	case c.TimeOfDay < 0.85:
		return Dusk
	default:
		return Night
	}
}

// Ambient returns the ambient light level in [0,1] for the current time of
// day, scaled by the season. The sun height follows a sine over the day.
func (c *Cycle) Ambient(params SeasonParams) float64 {
	const (
		ambientMin = 0.15
		ambientMax = 1.0
	)

	// Sun is lowest at midnight (TimeOfDay 0), highest at noon (0.5)
	sunHeight := -math.Cos(c.TimeOfDay * 2 * math.Pi)

	mid := (ambientMin + ambientMax) / 2
	amp := (ambientMax - ambientMin) / 2
	ambient := (mid + amp*sunHeight) * params.AmbientScale

	if ambient < 0 {
		return 0
	}
	if ambient > 1 {
		return 1
	}
	return ambient
}

// Fog returns the fog density in [0,1]: the seasonal base plus a nighttime
// thickening.
func (c *Cycle) Fog(params SeasonParams) float64 {
	nightFactor := (1 - math.Sin(c.TimeOfDay*math.Pi)) * 0.4
	fog := params.FogDensity + nightFactor
	if fog > 1 {
		return 1
	}
	return fog
}
