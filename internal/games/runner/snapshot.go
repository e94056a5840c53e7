package runner

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Phase         string
	Health        int
	Score         int
	PlayerY       float64
	PlayerVel     float64
	PlayerHeight  float64
	ObstacleCount int
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:          w.tick,
		Phase:         w.phase.String(),
		Health:        w.player.Health,
		Score:         w.Distance(),
		PlayerY:       w.player.Pos.Y,
		PlayerVel:     w.player.Vel,
		PlayerHeight:  w.player.Size.H,
		ObstacleCount: len(w.obstacles),
	}
}
