package snake

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/underwater-snake/internal/config"
	"github.com/vovakirdan/underwater-snake/internal/core"
	"github.com/vovakirdan/underwater-snake/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
	}
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultSnakeConfig())
	g.Reset(testRuntime(seed))
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	input := core.NewInputFrame()
	for i := range 600 {
		input.Clear()
		switch i {
		case 20:
			input.Set(core.ActionDown)
		case 140:
			input.Set(core.ActionLeft)
		case 300:
			input.Set(core.ActionUp)
		}
		g1.Step(input)
		g2.Step(input)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Frame != s2.Frame || s1.Moves != s2.Moves || s1.Score != s2.Score {
		t.Errorf("Counters differ: %+v vs %+v", s1, s2)
	}
	if s1.Food != s2.Food || s1.Dir != s2.Dir || !slices.Equal(s1.Body, s2.Body) {
		t.Errorf("Board differs: %+v vs %+v", s1, s2)
	}
}

func TestMoveInterval(t *testing.T) {
	g := newTestGame(1)
	input := core.NewInputFrame()

	// 0.2s at 60 FPS is 12 frames.
	for i := 1; i <= 36; i++ {
		res := g.Step(input)
		expected := i%12 == 0
		if res.Moved != expected {
			t.Fatalf("Frame %d: Moved = %v, expected %v", i, res.Moved, expected)
		}
	}
	if g.Snapshot().Moves != 3 {
		t.Errorf("Moves = %d, expected 3", g.Snapshot().Moves)
	}
}

func TestMoveIntervalFollowsPreset(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	config.ApplySnakePreset(&cfg, config.DifficultyHard)
	g := NewWithConfig(cfg)
	g.Reset(testRuntime(1))

	input := core.NewInputFrame()
	for range 72 {
		g.Step(input)
	}
	// 0.12s is 7.2 frames, so moves land on frames 8, 16, ...
	if got := g.Snapshot().Moves; got != 9 {
		t.Errorf("Moves after 72 frames = %d, expected 9", got)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(42)

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.Round().Body().Direction() != Right {
		t.Errorf("Direction = %v, reversal should be ignored", g.Round().Body().Direction())
	}
}

func TestDirectionOrderWithinFrame(t *testing.T) {
	g := newTestGame(42)

	// Heading right: Up is accepted first, then Left is no longer a reversal.
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	input.Set(core.ActionUp)
	g.Step(input)

	if g.Round().Body().Direction() != Left {
		t.Errorf("Direction = %v, expected left", g.Round().Body().Direction())
	}
}

func TestRoundOverEvent(t *testing.T) {
	g := newTestGame(7)

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.Step(input)
	input.Clear()

	var over *core.Event
	for range 600 {
		res := g.Step(input)
		for i := range res.Events {
			if res.Events[i].Kind == core.EventRoundOver {
				over = &res.Events[i]
			}
		}
		if over != nil {
			break
		}
	}

	if over == nil {
		t.Fatal("Swimming up should hit the wall")
	}
	if over.Cause != "wall" {
		t.Errorf("Cause = %q, expected wall", over.Cause)
	}
	if over.Length < 3 {
		t.Errorf("Length = %d", over.Length)
	}
	if g.State().Running {
		t.Error("Game should be stopped after the wall")
	}
	if g.Snapshot().State != "stopped" {
		t.Errorf("Snapshot state = %q", g.Snapshot().State)
	}

	// Moving no longer happens until a direction is pressed.
	before := g.Snapshot().Moves
	for range 60 {
		g.Step(input)
	}
	if g.Snapshot().Moves != before {
		t.Error("Stopped game should not move")
	}

	input.Set(core.ActionDown)
	g.Step(input)
	if !g.State().Running {
		t.Error("A direction should restart the game")
	}
}

func TestBestScore(t *testing.T) {
	g := newTestGame(3)
	g.handleEvent(Event{Kind: EventEaten, Score: 4})
	g.handleEvent(Event{Kind: EventGameOver, Score: 4, Cause: CauseSelf})
	g.handleEvent(Event{Kind: EventEaten, Score: 1})

	if g.Best() != 4 {
		t.Errorf("Best = %d, expected 4", g.Best())
	}

	g.Reset(testRuntime(4))
	if g.Best() != 4 {
		t.Error("Best should survive Reset")
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(5)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	none := core.NewInputFrame()

	g.Step(pause)
	if !g.Paused() || !g.State().Paused {
		t.Fatal("Game should be paused")
	}
	for range 60 {
		if res := g.Step(none); res.Moved {
			t.Fatal("Paused game should not move")
		}
	}
	if g.Snapshot().Frame != 0 {
		t.Errorf("Clock should stop while paused, frame = %d", g.Snapshot().Frame)
	}

	g.Step(pause)
	if g.Paused() {
		t.Error("Second pause should resume")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultSnakeConfig())
	cfg := testRuntime(1)
	cfg.ScreenW, cfg.ScreenH = 40, 20
	g.Reset(cfg)

	for range 30 {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Moves != 0 || !g.Snapshot().TooSmall {
		t.Error("Game should wait while the window is too small")
	}

	screen := core.NewScreen(40, 20)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Too small overlay missing")
	}

	g.Resize(80, 40)
	for range 12 {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Moves != 1 {
		t.Errorf("Moves after resize = %d, expected 1", g.Snapshot().Moves)
	}
}

func TestHeadlessNeverTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 60})

	for range 12 {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().TooSmall || g.Snapshot().Moves != 1 {
		t.Errorf("Headless game should run: %+v", g.Snapshot())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(9)
	screen := core.NewScreen(80, 40)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Underwater Snake") || !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD = %q", hud)
	}
	if screen.GetCell(0, 0).Color != core.ColorDefault {
		t.Error("HUD margin should be uncolored")
	}
	if screen.GetCell(1, 0).Color != core.ColorCyan || screen.GetCell(12, 0).Color != core.ColorMagenta {
		t.Error("Title should be two-tone")
	}

	board := g.boardRect(screen)
	x, y := cellPos(board, Cell{6, 9})
	if screen.Get(x, y) != '█' {
		t.Errorf("Head glyph = %q", screen.Get(x, y))
	}
	fx, fy := cellPos(board, g.Round().Food())
	if screen.Get(fx, fy) != '>' || screen.GetCell(fx, fy).Color != core.ColorOrange {
		t.Error("Food glyph missing")
	}
	if screen.Get(board.X, board.Y) != '┌' {
		t.Error("Board border missing")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(9)
	g.Round().GameOver(CauseWall)

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("Game over overlay missing")
	}
}

func TestRegistered(t *testing.T) {
	game, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("registry.Create(%q) failed: %v", GameID, err)
	}
	if game.ID() != GameID || game.Title() != Title {
		t.Errorf("Got %s/%s", game.ID(), game.Title())
	}
}
