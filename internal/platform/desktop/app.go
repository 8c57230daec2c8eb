// Package desktop runs the game in a native window with ebiten. It draws
// the board in pixels from the game's geometry and shares the terminal
// frontend's collaborators: score saving, sound cues and the spectator feed.
package desktop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/underwater-snake/internal/audio"
	"github.com/vovakirdan/underwater-snake/internal/core"
	"github.com/vovakirdan/underwater-snake/internal/games/snake"
	"github.com/vovakirdan/underwater-snake/internal/storage"
)

// ScoreSaver persists finished rounds.
type ScoreSaver interface {
	SaveRound(r storage.RoundResult) (int64, error)
}

// Publisher receives spectator frames.
type Publisher interface {
	Publish(v any) error
}

// Options wires the window's collaborators. Every field is optional.
type Options struct {
	Store     ScoreSaver
	Audio     audio.Player
	Spectator Publisher
	Logger    *log.Logger
	Seed      int64
}

// App implements ebiten.Game around a snake game.
type App struct {
	game  *snake.Game
	opts  Options
	input core.InputFrame
	state core.GameState
	keys  []ebiten.Key
	quit  bool
}

// NewApp creates the window model and starts the first round.
func NewApp(game *snake.Game, opts Options) *App {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	game.Reset(core.RuntimeConfig{
		TickRate: game.Config().Timing.RenderFPS,
		Seed:     opts.Seed,
	})

	return &App{
		game:  game,
		opts:  opts,
		input: core.NewInputFrame(),
		state: game.State(),
	}
}

// Update runs one frame of the simulation.
func (a *App) Update() error {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	return a.step(a.keys)
}

// step applies the keys pressed this frame and advances the game.
func (a *App) step(keys []ebiten.Key) error {
	a.input.Clear()
	if framePressed(keys, &a.input) {
		a.saveUnfinished()
		a.quit = true
		return ebiten.Termination
	}

	result := a.game.Step(a.input)
	a.state = result.State
	a.handleEvents(result.Events)
	if result.Moved || len(result.Events) > 0 {
		a.publish()
	}
	return nil
}

func (a *App) handleEvents(events []core.Event) {
	for _, e := range events {
		if cue, ok := audio.ForEvent(e); ok {
			a.opts.Audio.Play(cue)
		}
		if e.Kind == core.EventRoundOver {
			a.opts.Logger.Debug("Round over", "score", e.Score, "length", e.Length, "cause", e.Cause)
			a.saveRound(storage.RoundResult{
				GameID: a.game.ID(),
				Score:  e.Score,
				Length: e.Length,
				Cause:  e.Cause,
			})
		}
	}
}

// saveUnfinished records the round in progress when the window closes.
func (a *App) saveUnfinished() {
	if !a.state.Running {
		return
	}
	a.saveRound(storage.RoundResult{
		GameID: a.game.ID(),
		Score:  a.state.Score,
		Length: a.state.Length,
		Cause:  "quit",
	})
}

func (a *App) saveRound(r storage.RoundResult) {
	if a.opts.Store == nil || r.Score <= 0 {
		return
	}
	if _, err := a.opts.Store.SaveRound(r); err != nil {
		a.opts.Logger.Warn("Could not save round", "score", r.Score, "error", err)
	}
}

func (a *App) publish() {
	if a.opts.Spectator == nil {
		return
	}
	if err := a.opts.Spectator.Publish(a.game.Observe()); err != nil {
		a.opts.Logger.Warn("Spectator publish failed", "error", err)
	}
}

// Draw renders the board.
func (a *App) Draw(screen *ebiten.Image) {
	drawBoard(screen, a.game)
}

// Layout keeps the logical screen at the board's window size; ebiten scales
// it to whatever the window really is.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := a.game.Geometry().WindowSize()
	return side, side
}

// Run opens the window and blocks until it is closed.
func Run(game *snake.Game, opts Options) error {
	app := NewApp(game, opts)

	side := game.Geometry().WindowSize()
	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowTitle(snake.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.Config().Timing.RenderFPS)

	app.opts.Logger.Info("Opening window", "size", side, "fps", game.Config().Timing.RenderFPS)
	err := ebiten.RunGame(app)
	if !app.quit {
		// Closing from the title bar never reaches the quit key path.
		app.saveUnfinished()
	}
	if err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
