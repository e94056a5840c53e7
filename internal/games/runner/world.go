// Package runner implements the side-scrolling avoidance game: a single
// controllable entity jumps over or crouches under incoming block obstacles,
// loses health on impact, and the session ends when health reaches zero.
//
// The simulation is pure and delta-time stepped. Each Advance call runs the
// per-frame systems in a fixed order against one mutable World: input drain,
// physics integration, obstacle spawning, obstacle movement/reaping, collision
// detection, lifecycle check. The platform layer owns the clock and rendering.
package runner

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blockhop/internal/config"
	"github.com/vovakirdan/blockhop/internal/core"
)

// Phase is the two-value session lifecycle.
// Active -> Over when health reaches zero; Over -> Active on restart.
// No other transitions exist.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Player is the single controllable entity. Its horizontal position is fixed;
// only the vertical axis is dynamic. Positions are bottom-center anchors.
type Player struct {
	Pos      core.Vec2
	Vel      float64    // Vertical velocity; horizontal is always zero
	Size     core.Size  // Current size, mutable for crouch
	BaseSize core.Size  // Immutable reference size
	Health   int        // Non-negative, starts at starting_health
	Color    core.Color // Exposed to the renderer
}

// Box returns the player's current collision box.
func (p Player) Box() core.Box {
	return core.Box{Pos: p.Pos, Size: p.Size}
}

// World is the complete mutable state of one game session. All systems run
// sequentially within a tick; there is no concurrent mutation.
type World struct {
	cfg       config.RunnerConfig
	rng       *rand.Rand
	player    Player
	obstacles []Obstacle
	spawn     SpawnTimer
	phase     Phase
	tick      uint64
	distance  float64 // Units scrolled past while active; basis for score
}

// NewWorld creates a world for a new session. A fixed seed reproduces an
// identical obstacle sequence.
func NewWorld(cfg config.RunnerConfig, seed int64) *World {
	w := &World{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	w.resetSession()
	return w
}

// resetSession performs the full session reset contract: health back to
// starting value, base size restored, player grounded, all obstacles cleared,
// spawn timer re-armed, lifecycle back to Active. Safe to call at any time;
// resetting an already-fresh session is a no-op in effect.
func (w *World) resetSession() {
	base := core.Size{W: w.cfg.Player.Width, H: w.cfg.Player.Height}
	w.player = Player{
		Pos:      core.Vec2{X: w.cfg.Player.X, Y: w.cfg.World.GroundLevel},
		Vel:      0,
		Size:     base,
		BaseSize: base,
		Health:   w.cfg.Gameplay.StartingHealth,
		Color:    core.ColorBrightGreen,
	}
	w.obstacles = w.obstacles[:0]
	w.spawn = SpawnTimer{Interval: w.cfg.Spawn.IntervalSeconds}
	w.phase = PhaseActive
	w.distance = 0
}

// Advance runs one simulation tick with the given frame delta and all input
// events buffered since the previous tick. Events are drained fully, then the
// gameplay systems run in fixed order. While the session is Over, only
// restart input has any effect.
func (w *World) Advance(dt float64, events []core.KeyEvent) {
	w.tick++
	w.drainInput(events)

	if w.phase != PhaseActive {
		return
	}

	w.integratePhysics(dt)
	w.tickSpawner(dt)
	w.moveObstacles(dt)
	w.detectCollisions()
	w.checkHealth()
	w.distance += w.cfg.Physics.ScrollSpeed * dt
}

// drainInput processes all buffered key events in arrival order.
func (w *World) drainInput(events []core.KeyEvent) {
	for _, e := range events {
		switch e.Action {
		case core.ActionJump:
			if !e.Pressed {
				continue
			}
			switch w.phase {
			case PhaseActive:
				// A jump is accepted only at or below ground level;
				// a press while airborne has no effect.
				if w.player.Pos.Y <= w.cfg.World.GroundLevel {
					w.player.Vel = w.cfg.Physics.JumpImpulse
				}
			case PhaseOver:
				// The jump key doubles as restart after game over.
				w.resetSession()
			}

		case core.ActionRestart:
			// Restart is ignored while the session is active.
			if e.Pressed && w.phase == PhaseOver {
				w.resetSession()
			}

		case core.ActionCrouch:
			if w.phase != PhaseActive {
				continue
			}
			if e.Pressed {
				w.crouch()
			} else {
				w.player.Size = w.player.BaseSize
			}
		}
	}
}

// crouch halves the player's current height unless already at or below half
// the base height. The bottom edge stays anchored since positions are
// bottom-center anchors. Only the collision box changes; physics is unaffected.
func (w *World) crouch() {
	half := w.player.BaseSize.H / 2
	if w.player.Size.H > half {
		w.player.Size.H = half
	}
}

// integratePhysics applies gravity to the vertical velocity, integrates the
// position, and clamps to ground level. Landing is inelastic: the velocity is
// zeroed on any frame that would have put the player below ground.
func (w *World) integratePhysics(dt float64) {
	w.player.Vel += w.cfg.Physics.Gravity * dt
	w.player.Pos.Y += w.player.Vel * dt

	if w.player.Pos.Y <= w.cfg.World.GroundLevel {
		w.player.Pos.Y = w.cfg.World.GroundLevel
		w.player.Vel = 0
	}
}

// detectCollisions tests the player's current (possibly crouched) box against
// every live obstacle. Each overlapping obstacle deals exactly one point of
// damage and is removed immediately, so it can never hit twice. Health never
// goes below zero even if several obstacles overlap on the same frame.
func (w *World) detectCollisions() {
	kept := w.obstacles[:0]
	playerBox := w.player.Box()
	for _, o := range w.obstacles {
		if playerBox.Overlaps(o.Box()) {
			if w.player.Health > 0 {
				w.player.Health--
			}
			continue
		}
		kept = append(kept, o)
	}
	w.obstacles = kept
}

// checkHealth is the single place the Active -> Over transition happens.
// Runs once per frame, after collision resolution.
func (w *World) checkHealth() {
	if w.player.Health == 0 {
		w.phase = PhaseOver
	}
}

// Player returns the controllable entity's current state.
func (w *World) Player() Player {
	return w.player
}

// Obstacles returns the live obstacle set. The slice is only valid until the
// next Advance call; callers must not retain or mutate it.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Phase returns the current lifecycle phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Health returns the player's remaining health.
func (w *World) Health() int {
	return w.player.Health
}

// Distance returns the distance survived in whole world units.
func (w *World) Distance() int {
	return int(w.distance)
}

// Tick returns the number of Advance calls so far.
func (w *World) Tick() uint64 {
	return w.tick
}

// HealthLabel returns the HUD text content for the health display.
// The renderer owns layout; the simulation owns the text.
func (w *World) HealthLabel() string {
	return fmt.Sprintf("Health: %d", w.player.Health)
}

// Banner returns the terminal banner text and whether it should be visible.
// Visibility is tied to the lifecycle phase.
func (w *World) Banner() (string, bool) {
	if w.phase == PhaseOver {
		return "GAME OVER", true
	}
	return "", false
}
