package runner

import (
	"testing"

	"github.com/vovakirdan/blockhop/internal/config"
	"github.com/vovakirdan/blockhop/internal/core"
)

func newTestWorld(seed int64) *World {
	return NewWorld(config.DefaultRunnerConfig(), seed)
}

func pressOf(a core.Action) []core.KeyEvent {
	return []core.KeyEvent{{Action: a, Pressed: true}}
}

func releaseOf(a core.Action) []core.KeyEvent {
	return []core.KeyEvent{{Action: a, Pressed: false}}
}

func TestGroundClamp(t *testing.T) {
	w := newTestWorld(1)
	ground := w.cfg.World.GroundLevel

	// Jump, then integrate through the whole arc and beyond.
	w.Advance(1.0/60, pressOf(core.ActionJump))

	landed := false
	for i := 0; i < 600; i++ {
		prevY := w.player.Pos.Y
		w.Advance(1.0/60, nil)

		if w.player.Pos.Y < ground {
			t.Fatalf("tick %d: player sank below ground: %f < %f", i, w.player.Pos.Y, ground)
		}
		// Any frame that clamps to ground must also zero the velocity.
		if prevY > ground && w.player.Pos.Y == ground {
			landed = true
			if w.player.Vel != 0 {
				t.Errorf("velocity not zeroed on landing, got %f", w.player.Vel)
			}
		}
	}

	if !landed {
		t.Error("player never landed after jump")
	}
	if w.player.Pos.Y != ground {
		t.Errorf("player should rest at ground level %f, got %f", ground, w.player.Pos.Y)
	}
}

func TestJumpAcceptedOnlyOnGround(t *testing.T) {
	w := newTestWorld(1)

	// Grounded press sets the impulse exactly.
	w.drainInput(pressOf(core.ActionJump))
	if w.player.Vel != w.cfg.Physics.JumpImpulse {
		t.Fatalf("grounded jump should set velocity to %f, got %f", w.cfg.Physics.JumpImpulse, w.player.Vel)
	}

	// Leave the ground, then press again mid-air.
	w.Advance(1.0/60, nil)
	if w.player.Pos.Y <= w.cfg.World.GroundLevel {
		t.Fatal("player should be airborne after jump integration")
	}

	velBefore := w.player.Vel
	w.drainInput(pressOf(core.ActionJump))
	if w.player.Vel != velBefore {
		t.Errorf("airborne jump press must have no effect: velocity %f -> %f", velBefore, w.player.Vel)
	}
}

func TestCrouchHalvesHeightAndRestores(t *testing.T) {
	w := newTestWorld(1)
	base := w.player.BaseSize

	w.Advance(1.0/60, pressOf(core.ActionCrouch))
	if w.player.Size.H != base.H/2 {
		t.Errorf("crouch should halve height to %f, got %f", base.H/2, w.player.Size.H)
	}
	if w.player.Size.W != base.W {
		t.Errorf("crouch must preserve width %f, got %f", base.W, w.player.Size.W)
	}

	// A second press at half height is a no-op.
	w.Advance(1.0/60, pressOf(core.ActionCrouch))
	if w.player.Size.H != base.H/2 {
		t.Errorf("second crouch press changed height to %f", w.player.Size.H)
	}

	// Release restores the base size.
	w.Advance(1.0/60, releaseOf(core.ActionCrouch))
	if w.player.Size != base {
		t.Errorf("release should restore base size %+v, got %+v", base, w.player.Size)
	}
}

func TestCrouchIgnoredWhileOver(t *testing.T) {
	w := newTestWorld(1)
	w.player.Health = 0
	w.checkHealth()

	size := w.player.Size
	w.Advance(1.0/60, pressOf(core.ActionCrouch))
	if w.player.Size != size {
		t.Errorf("crouch while over changed size %+v -> %+v", size, w.player.Size)
	}
}

func TestCollisionHitAndMiss(t *testing.T) {
	obstacleSize := core.Size{W: 30, H: 30}

	tests := []struct {
		name       string
		obstacleX  float64
		wantHit    bool
		wantHealth int
	}{
		{"coincident anchors", -300, true, 2},
		{"exactly touching on x", -270, true, 2}, // dx=30 == 15+15, inclusive
		{"one unit beyond touch", -331, false, 3},
		{"far obstacle", -400, false, 3}, // dx=100 > 15+15
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(1)
			w.obstacles = append(w.obstacles, Obstacle{
				Pos:  core.Vec2{X: tc.obstacleX, Y: w.cfg.World.GroundLevel},
				Size: obstacleSize,
			})

			w.detectCollisions()

			if w.player.Health != tc.wantHealth {
				t.Errorf("health = %d, want %d", w.player.Health, tc.wantHealth)
			}
			gone := len(w.obstacles) == 0
			if gone != tc.wantHit {
				t.Errorf("obstacle removed = %v, want %v", gone, tc.wantHit)
			}
		})
	}
}

func TestCrouchedCollisionBox(t *testing.T) {
	w := newTestWorld(1)
	ground := w.cfg.World.GroundLevel

	// An obstacle reachable by the standing box but not the crouched
	// one: anchor dy = 38, standing threshold (50+30)/2 = 40.
	w.obstacles = append(w.obstacles, Obstacle{
		Pos:  core.Vec2{X: w.cfg.Player.X, Y: ground + 38},
		Size: core.Size{W: 30, H: 30},
	})

	w.drainInput(pressOf(core.ActionCrouch))
	// Crouched threshold (25+30)/2 = 27.5 < 38, no overlap.
	w.detectCollisions()
	if w.player.Health != 3 {
		t.Errorf("crouched player should dodge the high obstacle, health = %d", w.player.Health)
	}
	if len(w.obstacles) != 1 {
		t.Error("missed obstacle must stay alive")
	}

	// Standing back up, the same obstacle hits.
	w.drainInput(releaseOf(core.ActionCrouch))
	w.detectCollisions()
	if w.player.Health != 2 {
		t.Errorf("standing player should be hit, health = %d", w.player.Health)
	}
	if len(w.obstacles) != 0 {
		t.Error("hit obstacle must be removed")
	}
}

func TestHealthNeverUnderflows(t *testing.T) {
	w := newTestWorld(1)
	w.player.Health = 1

	// Two obstacles overlapping the player on the same frame.
	for i := 0; i < 2; i++ {
		w.obstacles = append(w.obstacles, Obstacle{
			Pos:  core.Vec2{X: w.cfg.Player.X, Y: w.cfg.World.GroundLevel},
			Size: core.Size{W: 30, H: 30},
		})
	}

	w.detectCollisions()

	if w.player.Health != 0 {
		t.Errorf("health = %d, must be exactly 0", w.player.Health)
	}
	if len(w.obstacles) != 0 {
		t.Errorf("both obstacles should be consumed, %d left", len(w.obstacles))
	}
}

func TestLifecycleTransitionWithinOneTick(t *testing.T) {
	w := newTestWorld(1)
	w.player.Health = 1
	w.obstacles = append(w.obstacles, Obstacle{
		Pos:  core.Vec2{X: w.cfg.Player.X, Y: w.cfg.World.GroundLevel},
		Size: core.Size{W: 30, H: 30},
	})

	w.Advance(1.0/60, nil)

	if w.player.Health != 0 {
		t.Fatalf("health = %d, want 0", w.player.Health)
	}
	if w.phase != PhaseOver {
		t.Error("phase must be Over on the tick health reaches 0")
	}
	if _, visible := w.Banner(); !visible {
		t.Error("banner must be visible while Over")
	}
}

func TestRestartResetsSession(t *testing.T) {
	w := newTestWorld(1)

	// Run a while, then kill the player.
	for i := 0; i < 120; i++ {
		w.Advance(1.0/60, nil)
	}
	w.player.Health = 0
	w.player.Size.H = w.player.BaseSize.H / 2
	w.Advance(1.0/60, nil)
	if w.phase != PhaseOver {
		t.Fatal("setup: expected phase Over")
	}

	w.Advance(1.0/60, pressOf(core.ActionRestart))

	if w.phase != PhaseActive {
		t.Error("restart should return to Active")
	}
	if w.player.Health != 3 {
		t.Errorf("restart should restore health to 3, got %d", w.player.Health)
	}
	if len(w.obstacles) != 0 {
		t.Errorf("restart should clear obstacles, %d left", len(w.obstacles))
	}
	if w.player.Size != w.player.BaseSize {
		t.Errorf("restart should restore base size, got %+v", w.player.Size)
	}
	if _, visible := w.Banner(); visible {
		t.Error("banner must be cleared after restart")
	}
}

func TestJumpKeyRestartsWhileOver(t *testing.T) {
	w := newTestWorld(1)
	w.player.Health = 0
	w.checkHealth()

	w.Advance(1.0/60, pressOf(core.ActionJump))

	if w.phase != PhaseActive {
		t.Error("jump key should restart while Over")
	}
	if w.player.Health != 3 {
		t.Errorf("health = %d, want 3", w.player.Health)
	}
}

func TestRestartIgnoredWhileActive(t *testing.T) {
	w := newTestWorld(1)
	for i := 0; i < 90; i++ {
		w.Advance(1.0/60, nil)
	}
	obstacles := len(w.obstacles)
	distance := w.distance

	w.Advance(1.0/60, pressOf(core.ActionRestart))

	if len(w.obstacles) < obstacles {
		t.Error("restart while Active must not clear obstacles")
	}
	if w.distance < distance {
		t.Error("restart while Active must not reset distance")
	}
}

func TestDoubleRestartIsHarmless(t *testing.T) {
	w := newTestWorld(1)
	w.player.Health = 0
	w.checkHealth()

	// Two presses in the same frame: the first restarts, the second is
	// ignored because the session is already Active again.
	events := []core.KeyEvent{
		{Action: core.ActionRestart, Pressed: true},
		{Action: core.ActionRestart, Pressed: true},
	}
	w.Advance(1.0/60, events)

	if w.phase != PhaseActive {
		t.Error("phase should be Active")
	}
	if w.player.Health != 3 {
		t.Errorf("health = %d, want 3", w.player.Health)
	}

	// And again on the next frame, still harmless.
	w.Advance(1.0/60, pressOf(core.ActionRestart))
	if w.player.Health < 0 || w.player.Health > 3 {
		t.Errorf("health out of range after repeated restart: %d", w.player.Health)
	}
}

func TestOverFreezesSimulation(t *testing.T) {
	w := newTestWorld(1)
	for i := 0; i < 90; i++ {
		w.Advance(1.0/60, nil)
	}
	w.player.Health = 0
	w.Advance(1.0/60, nil)
	if w.phase != PhaseOver {
		t.Fatal("setup: expected phase Over")
	}

	snap := w.Snapshot()
	for i := 0; i < 60; i++ {
		w.Advance(1.0/60, nil)
	}
	after := w.Snapshot()

	if after.ObstacleCount != snap.ObstacleCount {
		t.Error("obstacles must not spawn or move while Over")
	}
	if after.Score != snap.Score {
		t.Error("score must not advance while Over")
	}
	if after.PlayerY != snap.PlayerY {
		t.Error("physics must not run while Over")
	}
}

func TestHealthLabelTracksHealth(t *testing.T) {
	w := newTestWorld(1)
	if w.HealthLabel() != "Health: 3" {
		t.Errorf("label = %q", w.HealthLabel())
	}
	w.player.Health = 1
	if w.HealthLabel() != "Health: 1" {
		t.Errorf("label = %q", w.HealthLabel())
	}
}
