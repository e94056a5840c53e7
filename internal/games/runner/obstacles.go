package runner

import (
	"github.com/vovakirdan/blockhop/internal/core"
)

// timerEpsilon absorbs accumulated floating-point error so that a frame delta
// that should exactly complete the interval (e.g. ten 0.1s frames against a
// 1.0s interval) still fires on that frame.
const timerEpsilon = 1e-9

// Obstacle is one live hazard rectangle. Obstacles spawn at the right edge of
// the ground span and are destroyed when they scroll past the left edge or on
// collision. The world's obstacle slice is their only owner.
type Obstacle struct {
	Pos   core.Vec2 // Bottom-center anchor
	Size  core.Size
	Color core.Color
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.Box{Pos: o.Pos, Size: o.Size}
}

// SpawnTimer is a repeating accumulator timer driving the spawn cadence.
//
// Policy: at most one fire per Tick call. When a frame's delta exceeds the
// interval, the excess carries over in the accumulator and produces another
// fire on the following frame, so no completed interval is ever lost.
type SpawnTimer struct {
	Interval float64
	elapsed  float64
}

// Tick advances the accumulator by dt and reports whether the timer fired.
func (t *SpawnTimer) Tick(dt float64) bool {
	if t.Interval <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed+timerEpsilon >= t.Interval {
		t.elapsed -= t.Interval
		return true
	}
	return false
}

// Elapsed returns the current accumulator value.
func (t *SpawnTimer) Elapsed() float64 {
	return t.elapsed
}

// tickSpawner advances the spawn timer and creates one obstacle on expiry.
func (w *World) tickSpawner(dt float64) {
	if w.spawn.Tick(dt) {
		w.spawnObstacle()
	}
}

// spawnObstacle creates a new obstacle at the right edge of the ground span
// with a randomized vertical rise. The RNG is the world's seeded source, so a
// fixed seed reproduces the same offset sequence.
func (w *World) spawnObstacle() {
	var rise float64
	if w.cfg.Obstacles.MaxRise > 0 {
		rise = float64(w.rng.Uint32() % uint32(w.cfg.Obstacles.MaxRise))
	}
	w.obstacles = append(w.obstacles, Obstacle{
		Pos: core.Vec2{
			X: w.cfg.World.HalfWidth,
			Y: w.cfg.World.GroundLevel + rise,
		},
		Size:  core.Size{W: w.cfg.Obstacles.Width, H: w.cfg.Obstacles.Height},
		Color: core.ColorBrightRed,
	})
}

// moveObstacles scrolls every live obstacle left and reaps the ones that have
// reached the left edge of the ground span. Removal is immediate and
// unconditional; an obstacle sitting exactly on the edge is already gone.
func (w *World) moveObstacles(dt float64) {
	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		o.Pos.X -= w.cfg.Physics.ScrollSpeed * dt
		if o.Pos.X <= -w.cfg.World.HalfWidth {
			continue
		}
		kept = append(kept, o)
	}
	w.obstacles = kept
}
