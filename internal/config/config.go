// Package config provides YAML-based tuning for the wave game.
// The shipped defaults reproduce the original cadence of the game;
// every value can be overridden from a user config file.
package config

// Config contains all tunable parameters for a run.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Boat      Boat      `yaml:"boat"`
	Obstacles Obstacles `yaml:"obstacles"`
	Spawner   Spawner   `yaml:"spawner"`
}

// Physics defines the boat's vertical motion parameters.
// All distances are in normalized playfield units; steps are applied
// once per tick with no delta-time scaling.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity applied on jump (negative = up)
	SeaLevel    float64 `yaml:"sea_level"`    // Resting y of the boat hull
}

// Boat defines the boat's fixed horizontal band.
type Boat struct {
	X     float64 `yaml:"x"`     // Left edge of the hull
	Width float64 `yaml:"width"` // Hull width
}

// Obstacles defines the motion laws of both obstacle kinds.
type Obstacles struct {
	WaveSpeed     float64 `yaml:"wave_speed"`     // Leftward spray/wave scroll speed, units/s
	SprayWidth    float64 `yaml:"spray_width"`    // Spray sprite width
	SprayLifetime float64 `yaml:"spray_lifetime"` // Seconds a spray stays visible
	PelicanSpeed  float64 `yaml:"pelican_speed"`  // Leftward pelican speed, units/s
	PelicanWidth  float64 `yaml:"pelican_width"`  // Pelican sprite width
	PelicanY      float64 `yaml:"pelican_y"`      // Fixed pelican altitude
	FlapPeriod    float64 `yaml:"flap_period"`    // Seconds per pelican animation frame
}

// Spawner defines the randomized spawn schedule.
type Spawner struct {
	MinInterval float64 `yaml:"min_interval"` // Inclusive lower interval bound, seconds
	MaxInterval float64 `yaml:"max_interval"` // Exclusive upper interval bound, seconds
}
