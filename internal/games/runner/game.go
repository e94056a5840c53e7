package runner

import (
	"fmt"

	"github.com/vovakirdan/blockhop/internal/config"
	"github.com/vovakirdan/blockhop/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	GroundChar   = '═'
)

// Game adapts the World simulation to the platform contract: fixed-rate
// ticks, screen rendering, and pause/score bookkeeping. The World itself
// knows nothing about ticks per second or terminals.
type Game struct {
	world   *World
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	paused  bool
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Block Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}

	g.cfg = cfg
	g.runtime = runtime
	g.paused = false
	g.world = NewWorld(cfg, runtime.Seed)
}

// Step advances the game by one tick. The frame delta is derived from the
// configured tick rate; the world consumes the frame's buffered key events.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.HasPress(core.ActionPause) && g.world.Phase() == PhaseActive {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	dt := 1.0 / float64(tickRate)

	g.world.Advance(dt, in.Events)

	return core.StepResult{State: g.State()}
}

// World exposes the underlying simulation, read-only by convention.
func (g *Game) World() *World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Distance(),
		Health:   g.world.Health(),
		GameOver: g.world.Phase() == PhaseOver,
		Paused:   g.paused,
	}
}

// projection maps world units onto screen cells. World X spans the ground
// width; world Y spans from ground level up to the jump apex plus the
// player's height, so the whole reachable band is always on screen.
type projection struct {
	groundRow int
	scaleX    float64
	scaleY    float64
	halfWidth float64
	groundY   float64
}

func (g *Game) project(dst *core.Screen) projection {
	groundRow := dst.Height() - 2
	if groundRow < 2 {
		groundRow = 2
	}

	apex := 0.0
	if g.cfg.Physics.Gravity < 0 {
		apex = g.cfg.Physics.JumpImpulse * g.cfg.Physics.JumpImpulse / (2 * -g.cfg.Physics.Gravity)
	}
	span := apex + g.cfg.Player.Height
	if span <= 0 {
		span = 1
	}

	rowsAvail := groundRow - 1
	if rowsAvail < 1 {
		rowsAvail = 1
	}

	return projection{
		groundRow: groundRow,
		scaleX:    float64(dst.Width()) / (2 * g.cfg.World.HalfWidth),
		scaleY:    float64(rowsAvail) / span,
		halfWidth: g.cfg.World.HalfWidth,
		groundY:   g.cfg.World.GroundLevel,
	}
}

// col converts a world X coordinate to a screen column.
func (p projection) col(x float64) int {
	return int((x + p.halfWidth) * p.scaleX)
}

// bottomRow converts a world Y coordinate to the screen row of an entity's
// bottom edge. Ground level maps to the row just above the ground line.
func (p projection) bottomRow(y float64) int {
	return p.groundRow - 1 - int((y-p.groundY)*p.scaleY)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	proj := g.project(dst)

	// Ground
	dst.DrawHLine(0, proj.groundRow, dst.Width(), GroundChar)

	// Obstacles
	for _, o := range g.world.Obstacles() {
		g.drawEntity(dst, proj, o.Pos, o.Size, ObstacleChar, o.Color)
	}

	// Player
	player := g.world.Player()
	g.drawEntity(dst, proj, player.Pos, player.Size, PlayerChar, player.Color)

	// HUD: text content comes from the simulation, layout is ours.
	dst.DrawText(2, 0, " "+g.world.HealthLabel()+" ")
	scoreText := fmt.Sprintf(" Score: %d ", g.world.Distance())
	dst.DrawText(dst.Width()-len(scoreText)-2, 0, scoreText)

	// Help line below the ground
	dst.DrawText(2, proj.groundRow+1, "Space jump · S crouch · P pause · Q quit")

	if banner, visible := g.world.Banner(); visible {
		g.drawCenteredMessage(dst, banner, fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Distance()))
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawEntity renders a world-space rectangle as a block of cells. Entities
// are anchored at their bottom-center point.
func (g *Game) drawEntity(dst *core.Screen, proj projection, pos core.Vec2, size core.Size, ch rune, color core.Color) {
	wCells := core.Max(1, int(size.W*proj.scaleX+0.5))
	hCells := core.Max(1, int(size.H*proj.scaleY+0.5))

	left := proj.col(pos.X - size.W/2)
	bottom := proj.bottomRow(pos.Y)

	for dy := 0; dy < hCells; dy++ {
		for dx := 0; dx < wCells; dx++ {
			dst.SetCell(left+dx, bottom-dy, ch, color)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
