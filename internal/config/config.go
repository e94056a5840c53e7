// Package config provides YAML-based game configuration loading.
package config

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Physics   RunnerPhysics   `yaml:"physics"`
	World     RunnerWorld     `yaml:"world"`
	Player    RunnerPlayer    `yaml:"player"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Spawn     RunnerSpawn     `yaml:"spawn"`
	Gameplay  RunnerGameplay  `yaml:"gameplay"`
}

// RunnerPhysics defines the vertical physics parameters.
// Units are abstract world units per second; gravity is negative (downward).
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// RunnerWorld defines the ground span the game takes place over.
// Obstacles spawn at +half_width and are reaped below -half_width.
type RunnerWorld struct {
	GroundLevel float64 `yaml:"ground_level"`
	HalfWidth   float64 `yaml:"half_width"`
}

// RunnerPlayer defines the controllable entity's fixed placement and size.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerObstacles defines obstacle geometry. All obstacles are uniform
// rectangles; max_rise bounds the random vertical offset above ground.
type RunnerObstacles struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	MaxRise int     `yaml:"max_rise"`
}

// RunnerSpawn defines the obstacle spawn cadence.
type RunnerSpawn struct {
	IntervalSeconds float64 `yaml:"interval_seconds"`
}

// RunnerGameplay defines session-level rules.
type RunnerGameplay struct {
	StartingHealth int `yaml:"starting_health"`
}
