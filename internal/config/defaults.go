package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// Kept in sync with defaults/runner.yaml as a fallback if the embed
// fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:     -4000.0,
			JumpImpulse: 1000.0,
			ScrollSpeed: 400.0,
		},
		World: RunnerWorld{
			GroundLevel: -100.0,
			HalfWidth:   400.0,
		},
		Player: RunnerPlayer{
			X:      -300.0,
			Width:  30.0,
			Height: 50.0,
		},
		Obstacles: RunnerObstacles{
			Width:   30.0,
			Height:  30.0,
			MaxRise: 50,
		},
		Spawn: RunnerSpawn{
			IntervalSeconds: 1.0,
		},
		Gameplay: RunnerGameplay{
			StartingHealth: 3,
		},
	}
}
