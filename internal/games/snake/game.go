// Package snake implements Underwater Snake: a snake that swims on a fixed
// grid, eats fish to grow and score, and starts over after hitting a wall or
// itself.
//
// The simulation is split into Body (movement and growth), FoodSpawner
// (placement), and Round (per-move rules and the running/stopped lifecycle).
// Game adapts a Round to the platform: it runs once per rendered frame and
// moves the snake on a fixed interval of simulated time.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/underwater-snake/internal/config"
	"github.com/vovakirdan/underwater-snake/internal/core"
	"github.com/vovakirdan/underwater-snake/internal/registry"
)

const (
	// GameID identifies the game in the registry and the score database.
	GameID = "snake"
	// Title is the display name.
	Title = "Underwater Snake"
)

// activeConfig is used by New, so the registry factory picks up whatever the
// CLI loaded.
var activeConfig = config.DefaultSnakeConfig()

// SetConfig sets the configuration for games created by New.
func SetConfig(cfg config.SnakeConfig) {
	activeConfig = cfg
}

// ActiveConfig returns the configuration used by New.
func ActiveConfig() config.SnakeConfig {
	return activeConfig
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game for the snake.
type Game struct {
	cfg      config.SnakeConfig
	geom     Geometry
	rng      *rand.Rand
	round    *Round
	interval *Interval
	tickRate int
	frame    uint64 // Frames simulated while not paused
	moves    uint64 // Round updates performed
	best     int    // Best score seen by this game instance
	paused   bool
	tooSmall bool
	screenW  int
	screenH  int
	pending  []core.Event // Events raised during the current step
}

// New creates a game with the active configuration.
func New() *Game {
	return NewWithConfig(activeConfig)
}

// NewWithConfig creates a game with the given configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{
		cfg: cfg,
		geom: Geometry{
			CellSize:  cfg.Grid.CellSize,
			CellCount: cfg.Grid.CellCount,
			Offset:    cfg.Grid.Offset,
		},
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Reset starts a fresh round. The best score survives resets.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = g.cfg.Timing.RenderFPS
	}
	g.interval = NewInterval(g.cfg.Timing.Step())
	g.frame = 0
	g.moves = 0
	g.paused = false
	g.pending = nil
	g.round = NewRound(g.geom, g.rng, WithEventHandler(g.handleEvent))
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts to a new terminal size without touching the round.
// A 0x0 size means no terminal is attached (the desktop window) and never
// counts as too small.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if w == 0 && h == 0 {
		g.tooSmall = false
		return
	}
	lw, lh := g.layoutSize()
	g.tooSmall = w < lw || h < lh
}

// directionKeys lists steering actions in the order they are applied when
// several arrive in one frame. Later accepted requests win.
var directionKeys = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, Up},
	{core.ActionDown, Down},
	{core.ActionRight, Right},
	{core.ActionLeft, Left},
}

// Step advances one frame: maybe move the snake, then apply steering.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.pending = nil

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	moved := false
	if g.interval.Due(g.now()) && g.round.State() == StateRunning {
		g.round.Update()
		g.moves++
		moved = true
	}

	if !in.Empty() {
		for _, k := range directionKeys {
			if in.Has(k.action) {
				g.round.RequestDirection(k.dir)
			}
		}
	}

	return core.StepResult{
		State:  g.State(),
		Moved:  moved,
		Events: g.pending,
	}
}

// now returns the simulated time of the current frame. Computed from the
// frame count so that 60 frames at 60 FPS is exactly one second.
func (g *Game) now() time.Duration {
	return time.Duration(int64(g.frame) * int64(time.Second) / int64(g.tickRate))
}

func (g *Game) handleEvent(e Event) {
	switch e.Kind {
	case EventEaten:
		if e.Score > g.best {
			g.best = e.Score
		}
		g.pending = append(g.pending, core.Event{
			Kind:   core.EventScored,
			Score:  e.Score,
			Length: e.Length,
		})
	case EventGameOver:
		g.pending = append(g.pending, core.Event{
			Kind:   core.EventRoundOver,
			Score:  e.Score,
			Length: e.Length,
			Cause:  e.Cause.String(),
		})
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:   g.round.Score(),
		Length:  g.round.Body().Len(),
		Running: g.round.State() == StateRunning,
		Paused:  g.paused,
	}
}

// Geometry returns the board geometry.
func (g *Game) Geometry() Geometry {
	return g.geom
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Round returns the live round. Frontends read it to draw; they must not
// drive it directly.
func (g *Game) Round() *Round {
	return g.round
}

// Best returns the best score seen since the game was created.
func (g *Game) Best() int {
	return g.best
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}
