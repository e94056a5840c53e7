package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &embedded); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if embedded != DefaultRunnerConfig() {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig:\n  embed: %+v\n  code:  %+v",
			embedded, DefaultRunnerConfig())
	}
}

func TestDefaultRunnerConfigValues(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if cfg.Physics.Gravity != -4000.0 {
		t.Errorf("gravity = %f", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != 1000.0 {
		t.Errorf("jump impulse = %f", cfg.Physics.JumpImpulse)
	}
	if cfg.Physics.ScrollSpeed != 400.0 {
		t.Errorf("scroll speed = %f", cfg.Physics.ScrollSpeed)
	}
	if cfg.World.GroundLevel != -100.0 {
		t.Errorf("ground level = %f", cfg.World.GroundLevel)
	}
	if cfg.World.HalfWidth != 400.0 {
		t.Errorf("half width = %f", cfg.World.HalfWidth)
	}
	if cfg.Obstacles.Width != 30.0 || cfg.Obstacles.Height != 30.0 {
		t.Errorf("obstacle size = %fx%f", cfg.Obstacles.Width, cfg.Obstacles.Height)
	}
	if cfg.Obstacles.MaxRise != 50 {
		t.Errorf("max rise = %d", cfg.Obstacles.MaxRise)
	}
	if cfg.Spawn.IntervalSeconds != 1.0 {
		t.Errorf("spawn interval = %f", cfg.Spawn.IntervalSeconds)
	}
	if cfg.Gameplay.StartingHealth != 3 {
		t.Errorf("starting health = %d", cfg.Gameplay.StartingHealth)
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	content := `
physics:
  gravity: -2000.0
  jump_impulse: 800.0
  scroll_speed: 300.0
gameplay:
  starting_health: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Physics.Gravity != -2000.0 {
		t.Errorf("gravity = %f, want -2000", cfg.Physics.Gravity)
	}
	if cfg.Gameplay.StartingHealth != 5 {
		t.Errorf("starting health = %d, want 5", cfg.Gameplay.StartingHealth)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("missing explicit config path should be an error")
	}
}

func TestLoadRunnerInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Error("malformed yaml should be an error")
	}
}
